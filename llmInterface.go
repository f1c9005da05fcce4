package tripmate

import (
	"context"

	"github.com/openai/openai-go"
)

// LLM defines the minimal contract the agent requires from a language-model
// provider. The production implementation is OpenAIClient; tests substitute
// a scripted fake.
type LLM interface {
	// New issues a non-streaming chat completion request.
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}
