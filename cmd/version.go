package cmd

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/llm"
)

// version is set via -ldflags at build time.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version and supported providers",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), version, info)
	},
}

// writeVersion prints the version line, then the VCS revision and the
// provider list. An ldflags version wins over the module version.
func writeVersion(w io.Writer, ldflags string, info *debug.BuildInfo) {
	v, goVersion, revision := ldflags, "", ""
	dirty := false
	if info != nil {
		goVersion = info.GoVersion
		if v == "" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}
	if dirty && revision != "" {
		revision += "-dirty"
	}
	if v == "" {
		v = "(devel)"
	}

	line := "mcqgen " + v
	if goVersion != "" {
		line += " (" + goVersion + ")"
	}
	fmt.Fprintln(w, line)
	if revision != "" {
		fmt.Fprintln(w, "revision:", revision)
	}

	names := make([]string, 0, len(llm.AllProviders()))
	for _, p := range llm.AllProviders() {
		names = append(names, string(p))
	}
	fmt.Fprintln(w, "providers:", strings.Join(names, ", "))
}
