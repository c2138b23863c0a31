// Package conversation drives question/answer rounds between two Chatty participants.
// It only orchestrates; what gets asked and remembered is up to the participants.
package conversation

import (
	"chatbot/domain"
	"chatbot/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Exchange is one question and the answer it received.
type Exchange struct {
	ID       uuid.UUID
	Round    int
	Question string
	Answer   string
	At       time.Time
}

type Session struct {
	ID        uuid.UUID
	Exchanges []Exchange
}

type Host struct {
	log *slog.Logger
	now func() time.Time
}

func NewHost(log *slog.Logger) *Host {
	return &Host{log: log, now: time.Now}
}

// Converse lets asker question responder for the given number of rounds.
// On cancellation the exchanges gathered so far are returned with the context error.
func (h *Host) Converse(ctx context.Context, asker, responder domain.Chatty, rounds int) (Session, error) {
	session := Session{ID: uuid.New()}
	if err := validate.Var(rounds, "gte=1"); err != nil {
		return session, fmt.Errorf("%w: got %d", errors.ErrInvalidRounds, rounds)
	}
	h.log.Debug("Conversation started", "session", session.ID, "rounds", rounds,
		"asker_ai", asker.HasAI(), "responder_ai", responder.HasAI())

	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			h.log.Info("Conversation interrupted", "session", session.ID, "round", round, "error", err)
			return session, err
		}
		question := asker.Question()
		answer := responder.Answer(question)
		session.Exchanges = append(session.Exchanges, Exchange{
			ID:       uuid.New(),
			Round:    round,
			Question: question,
			Answer:   answer,
			At:       h.now().UTC(),
		})
		h.log.Debug("Exchange", "session", session.ID, "round", round, "question", question, "answer", answer)
	}

	h.log.Info("Conversation finished", "session", session.ID, "exchanges", len(session.Exchanges))
	return session, nil
}
