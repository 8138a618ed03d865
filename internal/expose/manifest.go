package expose

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vire-lang/vire/internal/argbind"
)

// Manifest is the YAML-described exposure surface for a set of
// Language types: documenting and cross-checking a ClassSpec rather
// than driving codegen against an arbitrary third-party Go package.
// cmd/vire-expose reads a Manifest alongside the static go/types
// inspection in inspect.go and reports any mismatch between declared
// and implemented surface.
type Manifest struct {
	Types []TypeManifest `yaml:"types"`
}

// TypeManifest documents one exposed Language type.
type TypeManifest struct {
	Name    string           `yaml:"name"`
	Doc     string           `yaml:"doc,omitempty"`
	Bases   []string         `yaml:"bases,omitempty"`
	Methods []MethodManifest `yaml:"methods,omitempty"`
	Members []MemberManifest `yaml:"members,omitempty"`
}

// MethodManifest documents one method's Language-visible signature.
type MethodManifest struct {
	Name   string          `yaml:"name"`
	Doc    string          `yaml:"doc,omitempty"`
	Static bool            `yaml:"static,omitempty"`
	Params []ParamManifest `yaml:"params,omitempty"`
}

// ParamManifest documents one parameter. Kind is one of
// "positional_only", "regular", "keyword_only".
type ParamManifest struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// MemberManifest documents one "member" annotation.
type MemberManifest struct {
	Name     string `yaml:"name"`
	Doc      string `yaml:"doc,omitempty"`
	Field    string `yaml:"field,omitempty"`
	ReadOnly bool   `yaml:"readonly,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
}

// LoadManifest parses a YAML-encoded exposure manifest.
func LoadManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("expose: parsing manifest: %w", err)
	}
	return &m, nil
}

// ParseParamKind maps a manifest parameter kind string onto
// argbind.ParamKind.
func ParseParamKind(s string) (argbind.ParamKind, error) {
	switch s {
	case "", "positional_only":
		return argbind.PositionalOnly, nil
	case "regular":
		return argbind.Regular, nil
	case "keyword_only":
		return argbind.KeywordOnly, nil
	default:
		return 0, fmt.Errorf("expose: unknown parameter kind %q", s)
	}
}
