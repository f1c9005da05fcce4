package tripmate

import "github.com/openai/openai-go"

// Thin wrappers so callers outside the agent loop don't need the SDK
// package for plain text messages.
func UserMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.UserMessage(content)
}

func AssistantMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.AssistantMessage(content)
}

func DeveloperMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.DeveloperMessage(content)
}

// MessageList holds an ordered conversation history. It is treated as a
// value: Agent.Run clones the list it receives and returns the grown copy,
// so a caller's history is never mutated underneath it.
type MessageList struct {
	Messages []openai.ChatCompletionMessageParamUnion
}

func NewMessageList(messages ...openai.ChatCompletionMessageParamUnion) MessageList {
	return MessageList{Messages: messages}
}

func (ml MessageList) Len() int {
	return len(ml.Messages)
}

// Clone returns an independent copy. Appends to one list never reach the
// other.
func (ml MessageList) Clone() MessageList {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(ml.Messages))
	copy(messages, ml.Messages)
	return MessageList{Messages: messages}
}

// Add appends messages in place.
func (ml *MessageList) Add(messages ...openai.ChatCompletionMessageParamUnion) {
	ml.Messages = append(ml.Messages, messages...)
}

// All returns the messages for a completion request.
func (ml MessageList) All() []openai.ChatCompletionMessageParamUnion {
	return ml.Messages
}
