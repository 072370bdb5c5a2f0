// Package agent holds agent definitions and the local registry they are
// persisted into. Definitions come from agents configuration files; the
// registry backs the run command when no agents file is supplied.
package agent

import (
	"gopkg.in/yaml.v3"

	"maestro/pkg/faults"
)

// Metadata identifies one agent.
type Metadata struct {
	Name   string            `yaml:"name" json:"name"`
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Spec describes how an agent executes.
type Spec struct {
	Model        string   `yaml:"model" json:"model"`
	Framework    string   `yaml:"framework,omitempty" json:"framework,omitempty"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Instructions string   `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	Tools        []string `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// Definition is one agent parsed from a configuration document.
type Definition struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Spec       Spec     `yaml:"spec" json:"spec"`
}

// Decode converts one untyped configuration document into a Definition.
func Decode(doc any) (*Definition, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return nil, faults.Wrap(faults.ConfigParse, err, "could not encode agent document")
	}
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, faults.Wrap(faults.ConfigParse, err, "could not decode agent document")
	}
	return &def, nil
}

// DecodeAll converts the agent documents in docs, skipping documents of other
// kinds (agents files may carry tools alongside agents).
func DecodeAll(docs []any) ([]Definition, error) {
	var defs []Definition
	for _, doc := range docs {
		def, err := Decode(doc)
		if err != nil {
			return nil, err
		}
		if def.Kind != "" && def.Kind != "Agent" {
			continue
		}
		defs = append(defs, *def)
	}
	return defs, nil
}
