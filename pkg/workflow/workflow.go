// Package workflow builds the in-memory workflow representation, renders
// mermaid diagrams from it, and runs its steps through an agent runner.
package workflow

import (
	"gopkg.in/yaml.v3"

	"maestro/pkg/faults"
)

// Step is one unit of a workflow template, bound to an agent by name.
type Step struct {
	Name  string `yaml:"name"`
	Agent string `yaml:"agent"`
}

// Template carries the executable part of a workflow spec.
type Template struct {
	Agents []string `yaml:"agents"`
	Prompt string   `yaml:"prompt"`
	Steps  []Step   `yaml:"steps"`
}

// Metadata identifies a workflow.
type Metadata struct {
	Name string `yaml:"name"`
}

// Spec is the workflow spec block.
type Spec struct {
	Template Template `yaml:"template"`
}

// Workflow is one decoded workflow document.
type Workflow struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// New decodes the first workflow document of a parsed file. Agent bindings
// are not required here; diagram rendering works without them.
func New(doc any) (*Workflow, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return nil, faults.Wrap(faults.ConfigParse, err, "could not encode workflow document")
	}
	var wf Workflow
	if err := yaml.Unmarshal(raw, &wf); err != nil {
		return nil, faults.Wrap(faults.ConfigParse, err, "could not decode workflow document")
	}
	return &wf, nil
}

// InjectPrompt overwrites spec.template.prompt in the raw document,
// creating the intermediate mappings if the file left them out. The operator
// prompt always wins over a statically configured one.
func InjectPrompt(doc any, prompt string) error {
	root, ok := doc.(map[string]any)
	if !ok {
		return faults.New(faults.ConfigParse, "workflow document is not a mapping")
	}
	spec, ok := root["spec"].(map[string]any)
	if !ok {
		spec = map[string]any{}
		root["spec"] = spec
	}
	tmpl, ok := spec["template"].(map[string]any)
	if !ok {
		tmpl = map[string]any{}
		spec["template"] = tmpl
	}
	tmpl["prompt"] = prompt
	return nil
}
