package workflow

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"maestro/pkg/agent"
)

// OpenAIRunner executes agents against an OpenAI-compatible chat endpoint.
// Credentials and base URL come from the standard OPENAI_* environment
// variables picked up by the client.
type OpenAIRunner struct {
	client openai.Client
}

// NewOpenAIRunner builds the production runner.
func NewOpenAIRunner() *OpenAIRunner {
	return &OpenAIRunner{client: openai.NewClient()}
}

// Invoke sends the agent's instructions plus the prompt and returns the
// model's reply.
func (r *OpenAIRunner) Invoke(ctx context.Context, def agent.Definition, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if def.Spec.Instructions != "" {
		messages = append(messages, openai.SystemMessage(def.Spec.Instructions))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(def.Spec.Model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("agent %s failed: %w", def.Metadata.Name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("agent %s returned no choices", def.Metadata.Name)
	}
	return resp.Choices[0].Message.Content, nil
}
