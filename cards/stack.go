package cards

import "strings"

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with a given number of cards
func NewStack(cards ...Card) Stack {
	return cards
}

// MustParseStack builds a stack from card shorthands, e.g. "9h", "K♠".
// It panics on malformed input and is meant for fixtures and tests.
func MustParseStack(shorthands ...string) Stack {
	stack := make(Stack, 0, len(shorthands))
	for _, s := range shorthands {
		stack = append(stack, MustCardFromString(s))
	}
	return stack
}

// AddCard appends a card to the end of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards appends cards to the end of the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
