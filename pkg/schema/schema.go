// Package schema discovers and applies the JSON schemas that validate
// maestro configuration documents. Three schemas ship embedded in the binary,
// one per document kind; an explicit schema file can override discovery.
package schema

import (
	"embed"
	"os"

	"maestro/pkg/faults"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Kind is a document's self-declared type tag.
type Kind string

const (
	KindAgent    Kind = "Agent"
	KindTool     Kind = "Tool"
	KindWorkflow Kind = "Workflow"
)

// Ref points at one schema document, embedded or on disk.
type Ref struct {
	Name string
	load func() ([]byte, error)
}

// Load reads the schema bytes. Failures are SchemaFile faults.
func (r Ref) Load() ([]byte, error) {
	raw, err := r.load()
	if err != nil {
		return nil, faults.Wrap(faults.SchemaFile, err, "could not read schema file: %s", r.Name)
	}
	return raw, nil
}

// FromFile builds a Ref for an explicitly supplied schema path.
func FromFile(path string) Ref {
	return Ref{
		Name: path,
		load: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

func embedded(name string) Ref {
	return Ref{
		Name: name,
		load: func() ([]byte, error) { return schemaFS.ReadFile("schemas/" + name) },
	}
}

// ForKind returns the embedded schema bound to a document kind.
func ForKind(k Kind) (Ref, error) {
	switch k {
	case KindAgent:
		return embedded("agent_schema.json"), nil
	case KindTool:
		return embedded("tool_schema.json"), nil
	case KindWorkflow:
		return embedded("workflow_schema.json"), nil
	default:
		return Ref{}, faults.New(faults.SchemaDiscovery, "unknown kind: %s", string(k))
	}
}

// Discover inspects the first document of a parsed file and maps its kind to
// the schema that must validate it. A missing or unrecognized kind is a
// SchemaDiscovery fault naming the offending value.
func Discover(docs []any) (Ref, error) {
	if len(docs) == 0 {
		return Ref{}, faults.New(faults.SchemaDiscovery, "no documents found")
	}
	doc := docs[0]
	m, ok := doc.(map[string]any)
	if !ok {
		return Ref{}, faults.New(faults.SchemaDiscovery, "document is not a mapping")
	}
	kind, _ := m["kind"].(string)
	if kind == "" {
		return Ref{}, faults.New(faults.SchemaDiscovery, "unknown kind: %v", m["kind"])
	}
	ref, err := ForKind(Kind(kind))
	if err != nil {
		return Ref{}, faults.New(faults.SchemaDiscovery, "unknown kind: %s", kind)
	}
	return ref, nil
}

// DocKind reports the kind tag of one document, empty when absent.
func DocKind(doc any) Kind {
	m, ok := doc.(map[string]any)
	if !ok {
		return ""
	}
	kind, _ := m["kind"].(string)
	return Kind(kind)
}

func (k Kind) String() string { return string(k) }
