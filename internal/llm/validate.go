package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateJSON checks that raw is a single JSON document accepted by schema.
// A nil schema only requires well-formed JSON. Failures are
// *ErrInvalidResponse carrying raw.
func ValidateJSON(schema *Schema, raw json.RawMessage) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not a JSON document: %w", err)}
	}
	if schema == nil {
		return nil
	}

	compiled, err := schema.compile()
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("%s: %w", schema.Name, err)}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiled, s.err = compileDefinition(s.Name, s.Definition)
	})
	return s.compiled, s.err
}

// compileDefinition round-trips def through JSON so the compiler sees the
// same number and slice types it would get from a schema file.
func compileDefinition(name string, def map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("encode schema %q: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", name, err)
	}

	url := "mem://schemas/" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("load schema %q: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}
	return compiled, nil
}
