package cli

import (
	"context"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
	"maestro/pkg/schema"
	"maestro/pkg/yamlio"
)

// ValidateCmd validates a YAML configuration file against a JSON schema.
// With no explicit schema the document's kind selects one of the embedded
// schemas.
type ValidateCmd struct {
	inv *Invocation
}

func (c *ValidateCmd) Name() string { return "validate" }

func (c *ValidateCmd) Run(ctx context.Context) error {
	run := config.RunFrom(ctx)

	ref := schema.FromFile(c.inv.SchemaFile)
	if c.inv.SchemaFile == "" {
		docs, err := yamlio.ReadDocuments(c.inv.YamlFile)
		if err != nil {
			return faults.Wrap(faults.SchemaDiscovery, err, "Invalid YAML file: %s", c.inv.YamlFile)
		}
		ref, err = schema.Discover(docs)
		if err != nil {
			return faults.Wrap(faults.SchemaDiscovery, err, "Invalid YAML file: %s", c.inv.YamlFile)
		}
	}

	logx.Print("validating %s with schema %s", c.inv.YamlFile, ref.Name)

	onValid := func(int) {
		if !run.Silent {
			logx.Ok("YAML file is valid.")
		}
	}
	return schema.ValidateFile(ref, c.inv.YamlFile, onValid)
}
