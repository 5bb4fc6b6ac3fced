package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck52(t *testing.T) {
	deck := NewDeck52()

	assert.Len(t, deck, 52, "Expected deck to have 52 cards")

	seen := make(map[Card]bool)
	for _, card := range deck {
		assert.False(t, seen[card], "Duplicate card found: %s", card)
		seen[card] = true
	}
}

func TestNewDeck52_Order(t *testing.T) {
	deck := NewDeck52()

	assert.Equal(t, Card{Suit: Clubs, Value: Ace}, deck[0])
	assert.Equal(t, Card{Suit: Clubs, Value: King}, deck[12])
	assert.Equal(t, Card{Suit: Diamonds, Value: Ace}, deck[13])
	assert.Equal(t, Card{Suit: Spades, Value: King}, deck[51])
}
