//go:generate go run go.uber.org/mock/mockgen -source=chatty.go -destination=../mocks/mock_chatty.go -package=mocks
package domain

// ChatKind tags a transcript entry as a question or an answer.
type ChatKind rune

const (
	KindQuestion ChatKind = 'Q'
	KindAnswer   ChatKind = 'A'
)

func (k ChatKind) String() string {
	return string(rune(k))
}

func (k ChatKind) Valid() bool {
	return k == KindQuestion || k == KindAnswer
}

// Chatty is the capability of holding a conversation.
// Without AI a Chatty only replies with filler and remembers nothing.
type Chatty interface {
	HasAI() bool
	Question() string
	Answer(question string) string
}
