package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/mcqgen/internal/llm"
)

// Config holds all application configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Config struct {
	Port      int
	GinMode   string
	LogLevel  string
	LogFormat string

	// DBPath is the audit log location. Empty means store.DefaultDBPath.
	DBPath string

	// ServerURL is where `play` sends generation requests.
	ServerURL string

	// AllowedOrigins controls CORS. Empty means all origins are permitted.
	AllowedOrigins []string

	LLM llm.Config
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit YAML file. When empty, mcqgen.yaml is
	// searched for in the working directory and $XDG_CONFIG_HOME/mcqgen.
	ConfigFile string

	// EnvFile is loaded into the process environment when present.
	// Defaults to ".env".
	EnvFile string

	// Flags are bound over every other source.
	Flags *pflag.FlagSet
}

// envBindings maps config keys to environment variables.
var envBindings = map[string]string{
	"port":               "PORT",
	"gin_mode":           "GIN_MODE",
	"log.level":          "LOG_LEVEL",
	"log.format":         "LOG_FORMAT",
	"db":                 "MCQGEN_DB",
	"server_url":         "MCQGEN_SERVER_URL",
	"allowed_origins":    "ALLOWED_ORIGINS",
	"llm.timeout":        "MCQGEN_LLM_TIMEOUT",
	"openai.api_key":     "OPENAI_API_KEY",
	"openai.model":       "OPENAI_MODEL",
	"openai.base_url":    "OPENAI_BASE_URL",
	"anthropic.api_key":  "ANTHROPIC_API_KEY",
	"anthropic.model":    "ANTHROPIC_MODEL",
	"anthropic.base_url": "ANTHROPIC_BASE_URL",
	"gemini.api_key":     "GEMINI_API_KEY",
	"gemini.model":       "GEMINI_MODEL",
	"gemini.base_url":    "GEMINI_BASE_URL",
	"xai.api_key":        "XAI_API_KEY",
	"xai.model":          "XAI_MODEL",
	"xai.base_url":       "XAI_BASE_URL",
}

// flagBindings maps command-line flag names to config keys.
var flagBindings = map[string]string{
	"port":       "port",
	"db":         "db",
	"log-level":  "log.level",
	"log-format": "log.format",
	"server":     "server_url",
	"timeout":    "llm.timeout",
}

// Load reads configuration from defaults, an optional YAML file, the
// environment (after loading .env if present) and flags, in increasing
// order of precedence.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for name, key := range flagBindings {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Port:           v.GetInt("port"),
		GinMode:        v.GetString("gin_mode"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
		DBPath:         v.GetString("db"),
		ServerURL:      strings.TrimRight(v.GetString("server_url"), "/"),
		AllowedOrigins: parseOrigins(v.GetString("allowed_origins")),
		LLM: llm.Config{
			OpenAI: llm.OpenAIConfig{
				APIKey:  v.GetString("openai.api_key"),
				Model:   v.GetString("openai.model"),
				BaseURL: v.GetString("openai.base_url"),
			},
			Anthropic: llm.AnthropicConfig{
				APIKey:  v.GetString("anthropic.api_key"),
				Model:   v.GetString("anthropic.model"),
				BaseURL: v.GetString("anthropic.base_url"),
			},
			Gemini: llm.GeminiConfig{
				APIKey:  v.GetString("gemini.api_key"),
				Model:   v.GetString("gemini.model"),
				BaseURL: v.GetString("gemini.base_url"),
			},
			XAI: llm.XAIConfig{
				APIKey:  v.GetString("xai.api_key"),
				Model:   v.GetString("xai.model"),
				BaseURL: v.GetString("xai.base_url"),
			},
			Timeout: v.GetDuration("llm.timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("invalid LLM timeout %s", c.LLM.Timeout)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("port", 3000)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")
	v.SetDefault("server_url", "http://localhost:3000")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("openai.model", d.OpenAI.Model)
	v.SetDefault("anthropic.model", d.Anthropic.Model)
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("xai.model", d.XAI.Model)
	v.SetDefault("xai.base_url", d.XAI.BaseURL)
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("mcqgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "mcqgen"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
