package ticks

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileDoc is the on-disk layout shared by the TOML and YAML formats:
//
//	[[list]]
//	id = "sizes"
//	  [[list.option]]
//	  value = 25
//	  label = "S"
type fileDoc struct {
	List []fileList `toml:"list" yaml:"list"`
}

type fileList struct {
	ID     string       `toml:"id" yaml:"id"`
	Option []fileOption `toml:"option" yaml:"option"`
}

type fileOption struct {
	Value rawValue `toml:"value" yaml:"value"`
	Label string   `toml:"label" yaml:"label"`
}

// rawValue accepts either a string or a number in the source file.
type rawValue string

// UnmarshalTOML implements toml.Unmarshaler.
func (r *rawValue) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case string:
		*r = rawValue(x)
	case int64, float64:
		*r = rawValue(fmt.Sprint(x))
	default:
		return fmt.Errorf("unsupported option value %v (%T)", v, v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *rawValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: option value must be a scalar", node.Line)
	}
	*r = rawValue(node.Value)
	return nil
}

// LoadFile reads option lists from a .toml, .yaml or .yml file and registers
// each one under its id.
func LoadFile(path string, reg *Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ticks: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data, reg)
	default:
		return LoadTOML(data, reg)
	}
}

// LoadTOML parses TOML option lists into reg.
func LoadTOML(data []byte, reg *Registry) error {
	var doc fileDoc
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return fmt.Errorf("ticks: parse TOML: %w", err)
	}
	return doc.register(reg)
}

// LoadYAML parses YAML option lists into reg.
func LoadYAML(data []byte, reg *Registry) error {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("ticks: parse YAML: %w", err)
	}
	return doc.register(reg)
}

func (d fileDoc) register(reg *Registry) error {
	for i, l := range d.List {
		if l.ID == "" {
			return fmt.Errorf("ticks: list %d has no id", i)
		}
		opts := make(StaticSource, len(l.Option))
		for j, o := range l.Option {
			opts[j] = Option{Value: string(o.Value), Label: o.Label}
		}
		reg.Register(l.ID, opts)
	}
	return nil
}
