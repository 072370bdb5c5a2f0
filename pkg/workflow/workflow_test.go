package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"maestro/pkg/agent"
	"maestro/pkg/config"
	"maestro/pkg/faults"
)

const workflowYAML = `apiVersion: maestro/v1alpha1
kind: Workflow
metadata:
  name: summarize-and-review
spec:
  template:
    agents:
      - summarizer
      - reviewer
    prompt: Summarize the attached report.
    steps:
      - name: summarize
        agent: summarizer
      - name: review
        agent: reviewer
`

func parseDoc(t *testing.T) any {
	t.Helper()
	var doc any
	require.NoError(t, yaml.Unmarshal([]byte(workflowYAML), &doc))
	return doc
}

func TestNew(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	assert.Equal(t, "summarize-and-review", wf.Metadata.Name)
	assert.Equal(t, "Summarize the attached report.", wf.Spec.Template.Prompt)
	require.Len(t, wf.Spec.Template.Steps, 2)
	assert.Equal(t, "summarizer", wf.Spec.Template.Steps[0].Agent)
}

func TestInjectPromptOverwrites(t *testing.T) {
	doc := parseDoc(t)
	require.NoError(t, InjectPrompt(doc, "operator prompt"))

	wf, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, "operator prompt", wf.Spec.Template.Prompt)
}

func TestInjectPromptCreatesPath(t *testing.T) {
	doc := map[string]any{"kind": "Workflow"}
	require.NoError(t, InjectPrompt(doc, "p"))

	wf, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, "p", wf.Spec.Template.Prompt)
}

func TestInjectPromptNonMapping(t *testing.T) {
	err := InjectPrompt("scalar", "p")
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.ConfigParse))
}

func TestToMermaidSequenceDiagram(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	out, err := wf.ToMermaid(StyleSequenceDiagram, "")
	require.NoError(t, err)
	assert.Contains(t, out, "sequenceDiagram\n")
	assert.Contains(t, out, "participant summarizer\n")
	assert.Contains(t, out, "participant reviewer\n")
	assert.Contains(t, out, "summarizer->>reviewer: summarize\n")
}

func TestToMermaidFlowchart(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	for _, orientation := range []string{OrientationTD, OrientationLR} {
		out, err := wf.ToMermaid(StyleFlowchart, orientation)
		require.NoError(t, err)
		assert.Contains(t, out, "flowchart "+orientation+"\n")
		assert.Contains(t, out, "summarizer--> reviewer\n")
	}
}

func TestToMermaidUnknownStyle(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	_, err = wf.ToMermaid("pie", "")
	require.Error(t, err)
}

// recordingRunner captures invocations and chains canned outputs.
type recordingRunner struct {
	calls   []string
	prompts []string
}

func (r *recordingRunner) Invoke(_ context.Context, def agent.Definition, prompt string) (string, error) {
	r.calls = append(r.calls, def.Metadata.Name)
	r.prompts = append(r.prompts, prompt)
	return fmt.Sprintf("%s-output", def.Metadata.Name), nil
}

func testDefs() []agent.Definition {
	return []agent.Definition{
		{Kind: "Agent", Metadata: agent.Metadata{Name: "summarizer"}, Spec: agent.Spec{Model: "gpt-4o-mini"}},
		{Kind: "Agent", Metadata: agent.Metadata{Name: "reviewer"}, Spec: agent.Spec{Model: "gpt-4o-mini"}},
	}
}

func TestEngineRunChainsOutputs(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	runner := &recordingRunner{}
	engine := NewEngine(wf, testDefs(), runner)
	require.NoError(t, engine.Run(context.Background()))

	assert.Equal(t, []string{"summarizer", "reviewer"}, runner.calls)
	require.Len(t, runner.prompts, 2)
	assert.Equal(t, "Summarize the attached report.", runner.prompts[0])
	assert.Equal(t, "summarizer-output", runner.prompts[1])
}

func TestEngineRunDryRunSkipsInvocation(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	runner := &recordingRunner{}
	engine := NewEngine(wf, testDefs(), runner)
	ctx := config.WithRun(context.Background(), config.Run{DryRun: true})
	require.NoError(t, engine.Run(ctx))

	assert.Empty(t, runner.calls)
}

func TestEngineRunUnknownAgent(t *testing.T) {
	wf, err := New(parseDoc(t))
	require.NoError(t, err)

	engine := NewEngine(wf, nil, &recordingRunner{})
	err = engine.Run(context.Background())
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.DelegateExecution))
}

func TestEngineRunNoSteps(t *testing.T) {
	engine := NewEngine(&Workflow{}, nil, &recordingRunner{})
	err := engine.Run(context.Background())
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.DelegateExecution))
}
