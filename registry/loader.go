// File: loader.go
// Title: Definition File Loader
// Description: Loads command and environment definitions from YAML or TOML
//              definition files and applies them to a registry. The format
//              is auto-detected from the file extension.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial loader with YAML/TOML support

package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefinitionFile is the on-disk shape of a definition file.
//
// YAML example:
//
//	commands:
//	  - name: emph
//	    parameters:
//	      - format: "{}"
//	        type: parsed
//	environments:
//	  - name: verbatim
//	    body: verbatim
type DefinitionFile struct {
	Commands     []CommandSpec     `yaml:"commands" toml:"commands"`
	Environments []EnvironmentSpec `yaml:"environments" toml:"environments"`
}

// CommandSpec describes one command entry in a definition file
type CommandSpec struct {
	Name        string          `yaml:"name" toml:"name"`
	Description string          `yaml:"description,omitempty" toml:"description,omitempty"`
	Parameters  []ParameterSpec `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
}

// EnvironmentSpec describes one environment entry in a definition file
type EnvironmentSpec struct {
	Name        string          `yaml:"name" toml:"name"`
	Description string          `yaml:"description,omitempty" toml:"description,omitempty"`
	Parameters  []ParameterSpec `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Body        string          `yaml:"body" toml:"body"`
}

// ParameterSpec describes one parameter slot in a definition file
type ParameterSpec struct {
	Format string `yaml:"format" toml:"format"`
	Type   string `yaml:"type" toml:"type"`
}

// LoadFile reads and decodes a definition file. The format is chosen by
// extension: .toml decodes as TOML, .yaml/.yml (and anything else) as YAML.
func LoadFile(path string) (*DefinitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition file: %w", err)
	}

	var file DefinitionFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode TOML definitions %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode YAML definitions %s: %w", path, err)
		}
	}

	return &file, nil
}

// Apply registers every definition in the file into the registry
func (f *DefinitionFile) Apply(reg Interface) error {
	for i, cmd := range f.Commands {
		params, err := parseParameterSpecs(cmd.Parameters)
		if err != nil {
			return fmt.Errorf("command %q (entry %d): %w", cmd.Name, i+1, err)
		}
		if err := reg.DefineCommand(cmd.Name, params); err != nil {
			return fmt.Errorf("command %q (entry %d): %w", cmd.Name, i+1, err)
		}
	}

	for i, env := range f.Environments {
		params, err := parseParameterSpecs(env.Parameters)
		if err != nil {
			return fmt.Errorf("environment %q (entry %d): %w", env.Name, i+1, err)
		}

		bodyType := TypeParsedTokens
		if env.Body != "" {
			bodyType, err = ParseType(env.Body)
			if err != nil {
				return fmt.Errorf("environment %q (entry %d): %w", env.Name, i+1, err)
			}
		}

		if err := reg.DefineEnvironment(env.Name, params, bodyType); err != nil {
			return fmt.Errorf("environment %q (entry %d): %w", env.Name, i+1, err)
		}
	}

	return nil
}

// Load is a convenience that reads a definition file and applies it
func Load(path string, reg Interface) error {
	file, err := LoadFile(path)
	if err != nil {
		return err
	}
	return file.Apply(reg)
}

func parseParameterSpecs(specs []ParameterSpec) ([]Parameter, error) {
	params := make([]Parameter, 0, len(specs))
	for i, spec := range specs {
		format, err := ParseFormat(spec.Format)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		ptype, err := ParseType(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		params = append(params, Parameter{Format: format, Type: ptype})
	}
	return params, nil
}
