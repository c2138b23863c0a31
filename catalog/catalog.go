// Package catalog holds the read-only question/answer dictionary chatbots draw from.
// A Catalog is immutable once built and can be shared by any number of bots.
package catalog

import (
	"chatbot/errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	LevelMin = 0
	LevelMax = 3
)

var validate = validator.New()

// Bounds is the inclusive range a bot level is clamped into.
type Bounds struct {
	Min int `validate:"gte=0"`
	Max int `validate:"gtfield=Min"`
}

func (b Bounds) Clamp(level int) int {
	return lo.Clamp(level, b.Min, b.Max)
}

// Random is the source used to pick questions. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

type Catalog struct {
	bounds    Bounds
	answers   map[string]string
	questions []string
}

// New copies entries into a Catalog. Questions are kept sorted so that a seeded
// Random always yields the same sequence.
func New(entries map[string]string, bounds Bounds) (Catalog, error) {
	if err := validate.Struct(bounds); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", errors.ErrInvalidBounds, err)
	}
	if len(entries) == 0 {
		return Catalog{}, errors.ErrEmptyCatalog
	}
	questions := lo.Keys(entries)
	slices.Sort(questions)
	return Catalog{
		bounds:    bounds,
		answers:   maps.Clone(entries),
		questions: questions,
	}, nil
}

// Default returns the built-in dictionary with bounds [LevelMin, LevelMax].
func Default() Catalog {
	c, err := New(defaultEntries, Bounds{Min: LevelMin, Max: LevelMax})
	if err != nil {
		panic(err)
	}
	return c
}

// WithBounds returns the same questions under other level bounds.
func (c Catalog) WithBounds(bounds Bounds) (Catalog, error) {
	return New(c.answers, bounds)
}

func (c Catalog) Bounds() Bounds {
	return c.bounds
}

func (c Catalog) Len() int {
	return len(c.questions)
}

func (c Catalog) Questions() []string {
	return slices.Clone(c.questions)
}

func (c Catalog) Lookup(question string) (string, bool) {
	answer, ok := c.answers[question]
	return answer, ok
}

// Pick draws a question uniformly among those not excluded.
// It returns false when every question is excluded or the catalog is empty.
func (c Catalog) Pick(rng Random, exclude func(question string) bool) (string, bool) {
	candidates := c.questions
	if exclude != nil {
		candidates = lo.Reject(c.questions, func(q string, _ int) bool {
			return exclude(q)
		})
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rng.IntN(len(candidates))], true
}

var defaultEntries = map[string]string{
	"How are you?":                  "Fine, thank you",
	"What is your name?":            "I am a chatbot",
	"Where do you live?":            "In the cloud",
	"What is your favourite color?": "Blue, like a terminal",
	"Do you like music?":            "Only the sound of fans spinning",
	"What time is it?":              "Time to chat",
	"Can you learn?":                "A little more every day",
	"Who made you?":                 "A team of students",
}
