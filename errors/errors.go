package errors

import "fmt"

var (
	ErrInvalidChatKind = fmt.Errorf("wrong type of the chat")
	ErrEmptyCatalog    = fmt.Errorf("catalog contains no question")
	ErrInvalidBounds   = fmt.Errorf("invalid level bounds")
	ErrInvalidRounds   = fmt.Errorf("number of rounds must be positive")
)
