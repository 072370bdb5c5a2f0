package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maestro/pkg/faults"
	"maestro/pkg/yamlio"
)

const validAgent = `apiVersion: maestro/v1alpha1
kind: Agent
metadata:
  name: summarizer
spec:
  model: gpt-4o-mini
  instructions: Summarize the input.
`

const invalidAgent = `apiVersion: maestro/v1alpha1
kind: Agent
metadata:
  name: broken
spec:
  framework: custom
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name     string
		doc      any
		wantName string
		wantErr  bool
	}{
		{"agent", map[string]any{"kind": "Agent"}, "agent_schema.json", false},
		{"tool", map[string]any{"kind": "Tool"}, "tool_schema.json", false},
		{"workflow", map[string]any{"kind": "Workflow"}, "workflow_schema.json", false},
		{"unknown kind", map[string]any{"kind": "Gadget"}, "", true},
		{"missing kind", map[string]any{"metadata": map[string]any{}}, "", true},
		{"non mapping", "scalar", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Discover([]any{tt.doc})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, faults.IsKind(err, faults.SchemaDiscovery))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, ref.Name)
		})
	}
}

func TestDiscoverUsesFirstDocument(t *testing.T) {
	docs := []any{
		map[string]any{"kind": "Tool"},
		map[string]any{"kind": "Agent"},
	}
	ref, err := Discover(docs)
	require.NoError(t, err)
	assert.Equal(t, "tool_schema.json", ref.Name)
}

func TestDiscoverEmpty(t *testing.T) {
	_, err := Discover(nil)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.SchemaDiscovery))
}

func TestValidateFileValid(t *testing.T) {
	path := writeFile(t, "agent.yaml", validAgent)
	docs, err := yamlio.ReadDocuments(path)
	require.NoError(t, err)
	ref, err := Discover(docs)
	require.NoError(t, err)

	var confirmed []int
	err = ValidateFile(ref, path, func(i int) { confirmed = append(confirmed, i) })
	require.NoError(t, err)
	assert.Equal(t, []int{0}, confirmed)
}

func TestValidateFileHaltsAtFirstInvalid(t *testing.T) {
	// Doc 0 valid, doc 1 invalid, doc 2 valid again. Validation must confirm
	// exactly one document and stop at the second.
	content := validAgent + "---\n" + invalidAgent + "---\n" + validAgent
	path := writeFile(t, "agents.yaml", content)
	ref, err := ForKind(KindAgent)
	require.NoError(t, err)

	var confirmed []int
	err = ValidateFile(ref, path, func(i int) { confirmed = append(confirmed, i) })
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.StructuralValidation))
	assert.Equal(t, []int{0}, confirmed)
}

func TestValidateFileMalformedSchema(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", `{"type": "object", "required": `)
	yamlPath := writeFile(t, "agent.yaml", validAgent)

	err := ValidateFile(FromFile(schemaPath), yamlPath, nil)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.SchemaFile))
}

func TestValidateFileMissingSchemaFile(t *testing.T) {
	yamlPath := writeFile(t, "agent.yaml", validAgent)

	err := ValidateFile(FromFile(filepath.Join(t.TempDir(), "nope.json")), yamlPath, nil)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.SchemaFile))
}

func TestValidateFileMissingYAML(t *testing.T) {
	ref, err := ForKind(KindAgent)
	require.NoError(t, err)

	err = ValidateFile(ref, filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.ConfigParse))
}

func TestEmbeddedSchemasCompile(t *testing.T) {
	for _, kind := range []Kind{KindAgent, KindTool, KindWorkflow} {
		ref, err := ForKind(kind)
		require.NoError(t, err)
		_, err = compile(ref)
		require.NoError(t, err, "embedded schema for %s must compile", kind)
	}
}
