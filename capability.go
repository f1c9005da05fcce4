// Package tripmate is a small tool-calling travel assistant built on chat
// completions. External read-only queries are wrapped as capabilities — named,
// describable units an agent can invoke on behalf of the model.
package tripmate

import (
	"context"

	"github.com/openai/openai-go"
)

// Parameter describes one argument a capability accepts. The ordered
// parameter list is surfaced to the model alongside the description so the
// selection policy knows how to call the capability.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Capability is a named unit of external functionality. Implementations are
// constructed once at startup with whatever configuration they need (an API
// credential, typically) and are immutable afterwards.
type Capability interface {
	Name() string
	Description() string
	Parameters() []Parameter

	// OpenAI returns the function-tool rendering of this capability for a
	// chat completion request.
	OpenAI() openai.ChatCompletionToolParam

	// Invoke executes the capability. It never returns an error: every
	// underlying fault is folded into the InvocationResult so the agent
	// always has text to hand back to the model.
	Invoke(ctx context.Context, args map[string]interface{}) InvocationResult
}

// InvocationResult is the normalized outcome of one capability invocation.
// Text is always present and human readable, whether or not the call
// succeeded. Cause carries the underlying fault for diagnostics and is nil
// on success.
type InvocationResult struct {
	Text  string
	Cause error
}

// Success reports whether the invocation completed without a fault.
func (r InvocationResult) Success() bool {
	return r.Cause == nil
}
