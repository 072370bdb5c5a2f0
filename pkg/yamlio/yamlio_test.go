package yamlio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maestro/pkg/faults"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDocumentsMulti(t *testing.T) {
	path := writeFile(t, "multi.yaml", "kind: Agent\nmetadata:\n  name: a1\n---\nkind: Agent\nmetadata:\n  name: a2\n")

	docs, err := ReadDocuments(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	first, ok := First(docs).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Agent", first["kind"])
}

func TestReadDocumentsSkipsEmpty(t *testing.T) {
	path := writeFile(t, "gaps.yaml", "kind: Tool\n---\n---\nkind: Agent\n")

	docs, err := ReadDocuments(path)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestReadDocumentsMissingFile(t *testing.T) {
	_, err := ReadDocuments(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.ConfigParse))
}

func TestReadDocumentsMalformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "kind: [unclosed\n")

	_, err := ReadDocuments(path)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.ConfigParse))
}

func TestFirstEmpty(t *testing.T) {
	assert.Nil(t, First(nil))
}
