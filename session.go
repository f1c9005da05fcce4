// Package tripmate - session.go
// Session tracks one conversation's state across turns.
package tripmate

import (
	"context"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session binds an agent, a model client, and the history accumulated so
// far. Turns are strictly sequential; a Session is not safe for concurrent
// Ask calls.
type Session struct {
	id      string
	agent   *Agent
	llm     LLM
	model   string
	history MessageList
	logger  *slog.Logger
}

// NewSession starts an empty conversation for the given agent.
func NewSession(agent *Agent, llm LLM, model string) (*Session, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	return &Session{
		id:     id,
		agent:  agent,
		llm:    llm,
		model:  model,
		logger: slog.Default(),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

// History returns the conversation so far.
func (s *Session) History() MessageList {
	return s.history
}

// Ask runs one turn. The session's history is replaced only when the turn
// succeeds, so a failed turn leaves the conversation as it was.
func (s *Session) Ask(ctx context.Context, userMessage string) (string, error) {
	s.logger.Info("turn started", "sessionID", s.id)
	reply, history, err := s.agent.Run(ctx, s.llm, s.model, s.history, userMessage)
	if err != nil {
		s.logger.Error("turn failed", "sessionID", s.id, "error", err)
		return "", err
	}
	s.history = history
	return reply, nil
}
