// Package tripmate - agent.go
// The Agent orchestrates chat completions and capability invocations to
// answer one user message at a time.
package tripmate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
)

// Agent pairs a persona with a capability registry. The model decides which
// capability, if any, to invoke for a given utterance; the agent carries
// the invocation out and folds the result back into the conversation.
type Agent struct {
	name         string
	instructions string
	registry     *Registry
	logger       *slog.Logger
}

// NewAgent builds an agent. The base instructions are extended with the
// registry's capability descriptors so the model knows what it can call.
func NewAgent(name string, instructions string, registry *Registry) *Agent {
	return &Agent{
		name:         name,
		instructions: buildInstructions(instructions, registry),
		registry:     registry,
		logger:       slog.Default(),
	}
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Instructions() string {
	return a.instructions
}

func (a *Agent) GetLogger() *slog.Logger {
	return a.logger
}

func (a *Agent) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// buildInstructions renders the registry's descriptors into the system
// prompt, along with the attribution rule the capabilities' output prefix
// relies on.
func buildInstructions(base string, registry *Registry) string {
	descriptors := registry.DescribeAll()
	if len(descriptors) == 0 {
		return base
	}
	rendered, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return base
	}
	return fmt.Sprintf(
		"%s\n\nHere are your available tools:\n\n%s\n\nWhen responding to users, be sure to mention which tool was used using [Tool Used: PluginName].",
		base, rendered,
	)
}

// Run executes one conversational turn. The history passed in is cloned,
// never mutated; the grown history is returned alongside the reply so
// callers thread conversation state explicitly between turns.
func (a *Agent) Run(ctx context.Context, llm LLM, model string, history MessageList, userMessage string) (string, MessageList, error) {
	messages := history.Clone()
	if messages.Len() == 0 {
		messages.Add(DeveloperMessage(a.instructions))
	}
	messages.Add(UserMessage(userMessage))

	for {
		params := openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(model),
			Messages: messages.All(),
		}
		if tools := a.registry.Tools(); len(tools) > 0 {
			params.Tools = tools
		}

		completion, err := llm.New(ctx, params)
		if err != nil {
			return "", history, fmt.Errorf("chat completion: %w", err)
		}
		if len(completion.Choices) == 0 {
			return "", history, fmt.Errorf("chat completion returned no choices")
		}

		message := completion.Choices[0].Message
		messages.Add(message.ToParam())

		if len(message.ToolCalls) == 0 {
			return message.Content, messages, nil
		}

		// Capability calls within a turn run one at a time, in the order
		// the model asked for them.
		for _, call := range message.ToolCalls {
			toolMessage, err := a.runToolCall(ctx, call.ID, call.Function.Name, call.Function.Arguments)
			if err != nil {
				return "", history, err
			}
			messages.Add(toolMessage)
		}
	}
}

// runToolCall resolves one model tool call into a tool message. Arguments
// the model got wrong are reported back to it so the turn can continue; an
// unknown capability name is a configuration fault and aborts the turn.
func (a *Agent) runToolCall(ctx context.Context, callID string, name string, rawArgs string) (openai.ChatCompletionMessageParamUnion, error) {
	args := map[string]interface{}{}
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		a.logger.Error("unmarshalling tool arguments", "tool", name, "error", err)
		return openai.ToolMessage("Error: invalid tool arguments. Do not retry.", callID), nil
	}

	a.logger.Info("invoking capability", "tool", name, "arguments", rawArgs)
	result, err := a.registry.Invoke(ctx, name, args)
	if err != nil {
		return openai.ChatCompletionMessageParamUnion{}, err
	}
	if !result.Success() {
		a.logger.Warn("capability reported failure", "tool", name, "cause", result.Cause)
	}
	return openai.ToolMessage(result.Text, callID), nil
}
