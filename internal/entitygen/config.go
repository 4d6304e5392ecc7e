package entitygen

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the accessor generator.
type Config struct {
	// ConfigFile is the entities.yaml listing the types. Required.
	ConfigFile string
	// Output is the file the accessors are written to. Required.
	Output string
	// Verbose enables progress output.
	Verbose bool
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.ConfigFile == "" {
		return fmt.Errorf("config file is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output file is required")
	}
	return nil
}

// AbsolutePaths converts relative paths to absolute paths.
func (c *Config) AbsolutePaths() error {
	var err error
	if c.ConfigFile, err = filepath.Abs(c.ConfigFile); err != nil {
		return fmt.Errorf("failed to resolve config file: %w", err)
	}
	if c.Output, err = filepath.Abs(c.Output); err != nil {
		return fmt.Errorf("failed to resolve output file: %w", err)
	}
	return nil
}

// Manifest is the content of entities.yaml.
//
//	package: model
//	types:
//	  - name: Address
//	  - name: Security
//	    table: securityTable
type Manifest struct {
	Package string      `yaml:"package"`
	Types   []TypeEntry `yaml:"types"`
}

// TypeEntry names one entity type. Table and Var default to the
// lower-camel type name suffixed with Table and Type.
type TypeEntry struct {
	Name  string `yaml:"name"`
	Table string `yaml:"table,omitempty"`
	Var   string `yaml:"var,omitempty"`
}

func (t TypeEntry) TableName() string {
	if t.Table != "" {
		return t.Table
	}
	return lowerFirst(t.Name) + "Table"
}

func (t TypeEntry) VarName() string {
	if t.Var != "" {
		return t.Var
	}
	return lowerFirst(t.Name) + "Type"
}

// LoadManifest reads and validates an entities file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entities file: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates an entities document.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse entities file: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Validate checks package and type names.
func (s *Manifest) Validate() error {
	if !token.IsIdentifier(s.Package) {
		return fmt.Errorf("invalid package name %q", s.Package)
	}
	if len(s.Types) == 0 {
		return fmt.Errorf("no types listed")
	}
	seen := make(map[string]bool, len(s.Types))
	for i, t := range s.Types {
		if !token.IsIdentifier(t.Name) || !token.IsExported(t.Name) {
			return fmt.Errorf("types[%d]: %q is not an exported identifier", i, t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("types[%d]: duplicate type %s", i, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
