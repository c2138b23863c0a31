package domain

import (
	"chatbot/catalog"
	"chatbot/errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const (
	fillerQuestion      = "Good"
	fillerAnswer        = "Excellent"
	interestingAnswer   = "Interesting question"
	recordKindSeparator = ":"
)

// ChatBot is a Robot with a level, a set of friends and a transcript.
// The level is clamped into the catalog bounds and never changes afterwards.
type ChatBot struct {
	Robot
	level   int
	friends []*ChatBot
	records []string
	catalog catalog.Catalog
	rng     catalog.Random
	log     *slog.Logger
}

var _ Chatty = (*ChatBot)(nil)

func NewChatBot(log *slog.Logger, name string, level int, c catalog.Catalog, rng catalog.Random) *ChatBot {
	return &ChatBot{
		Robot:   NewRobot(name),
		level:   c.Bounds().Clamp(level),
		friends: nil,
		records: nil,
		catalog: c,
		rng:     rng,
		log:     log,
	}
}

func (b *ChatBot) Level() int {
	return b.level
}

func (b *ChatBot) Friends() []*ChatBot {
	return append([]*ChatBot(nil), b.friends...)
}

func (b *ChatBot) ChatRecords() []string {
	return append([]string(nil), b.records...)
}

// AddFriend keeps friends unique by Equal, so adding the same bot twice is a no-op.
func (b *ChatBot) AddFriend(bot *ChatBot) {
	if bot == nil {
		return
	}
	if lo.ContainsBy(b.friends, bot.Equal) {
		return
	}
	b.friends = append(b.friends, bot)
}

// AddChatRecord appends "<kind>:<chat>" to the transcript.
// An unknown kind leaves the transcript untouched; the returned error is only informative.
func (b *ChatBot) AddChatRecord(kind ChatKind, chat string) error {
	if !kind.Valid() {
		b.log.Warn("Wrong type of the chat", "bot", b.Name(), "kind", kind.String())
		return fmt.Errorf("%w: %q", errors.ErrInvalidChatKind, kind.String())
	}
	b.records = append(b.records, record(kind, chat))
	return nil
}

// Equal reports whether other has the same name and level.
func (b *ChatBot) Equal(other *ChatBot) bool {
	if other == nil {
		return false
	}
	if b == other {
		return true
	}
	return b.Robot.Equal(other.Robot) && b.level == other.level
}

func (b *ChatBot) HasAI() bool {
	return b.level > b.catalog.Bounds().Min
}

// Question asks a random catalog question and records it.
// At the maximum level a bot never repeats itself while unasked questions remain;
// once all of them are exhausted it falls back to any question.
func (b *ChatBot) Question() string {
	if !b.HasAI() {
		return fillerQuestion
	}
	var exclude func(string) bool
	if b.level == b.catalog.Bounds().Max {
		exclude = b.alreadyAsked
	}
	question, ok := b.catalog.Pick(b.rng, exclude)
	if !ok && exclude != nil {
		b.log.Warn("Every question has already been asked", "bot", b.Name(), "questions", b.catalog.Len())
		question, ok = b.catalog.Pick(b.rng, nil)
	}
	if !ok {
		return fillerQuestion
	}
	_ = b.AddChatRecord(KindQuestion, question)
	return question
}

func (b *ChatBot) Answer(question string) string {
	if !b.HasAI() {
		return fillerAnswer
	}
	answer, ok := b.catalog.Lookup(question)
	if !ok {
		answer = interestingAnswer
	}
	_ = b.AddChatRecord(KindAnswer, answer)
	return answer
}

// ChatStats counts distinct transcript entries per kind.
// Entries are compared as a whole, prefix included.
type ChatStats struct {
	UniqueQuestions int
	UniqueAnswers   int
}

func (b *ChatBot) ChatStats() ChatStats {
	return ChatStats{
		UniqueQuestions: len(lo.Uniq(b.recordsOf(KindQuestion))),
		UniqueAnswers:   len(lo.Uniq(b.recordsOf(KindAnswer))),
	}
}

func (b *ChatBot) recordsOf(kind ChatKind) []string {
	return lo.Filter(b.records, func(r string, _ int) bool {
		return strings.HasPrefix(r, kind.String())
	})
}

func (b *ChatBot) alreadyAsked(question string) bool {
	return lo.Contains(b.records, record(KindQuestion, question))
}

func record(kind ChatKind, chat string) string {
	return kind.String() + recordKindSeparator + chat
}
