package schema

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"maestro/pkg/faults"
	"maestro/pkg/yamlio"
)

// ValidateFile validates every document in yamlPath against the schema in
// ref, halting at the first structurally invalid one. onValid, if non-nil, is
// called with the index of each document that passes, in order, so callers
// can confirm progress as the original file is walked.
//
// Failure kinds are distinguished: a malformed schema is a SchemaFile fault
// ("Schema file is NOT valid"), a failing document a StructuralValidation
// fault ("YAML file is NOT valid").
func ValidateFile(ref Ref, yamlPath string, onValid func(index int)) error {
	sch, err := compile(ref)
	if err != nil {
		return err
	}

	docs, err := yamlio.ReadDocuments(yamlPath)
	if err != nil {
		return err
	}

	for i, doc := range docs {
		inst, err := toInstance(doc)
		if err != nil {
			return faults.Wrap(faults.ConfigParse, err, "could not convert document %d of %s", i, yamlPath)
		}
		if err := sch.Validate(inst); err != nil {
			return faults.Wrap(faults.StructuralValidation, err, "YAML file is NOT valid")
		}
		if onValid != nil {
			onValid(i)
		}
	}
	return nil
}

// compile loads and compiles one schema document.
func compile(ref Ref) (*jsonschema.Schema, error) {
	raw, err := ref.Load()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, faults.Wrap(faults.SchemaFile, err, "Schema file is NOT valid")
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(ref.Name, doc); err != nil {
		return nil, faults.Wrap(faults.SchemaFile, err, "Schema file is NOT valid")
	}
	sch, err := c.Compile(ref.Name)
	if err != nil {
		return nil, faults.Wrap(faults.SchemaFile, err, "Schema file is NOT valid")
	}
	return sch, nil
}

// toInstance round-trips a YAML document through JSON so the validator sees
// the same value shapes the schema library expects.
func toInstance(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}
