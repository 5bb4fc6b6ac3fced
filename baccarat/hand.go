package baccarat

import (
	"errors"
	"fmt"

	"github.com/lazharichir/baccarat/cards"
)

// MaxHandCards is the most cards a side can hold in one round.
const MaxHandCards = 3

var (
	// ErrHandFull is returned when adding a card to a hand that already holds three.
	ErrHandFull = errors.New("hand already holds three cards")
	// ErrCardIndexOutOfRange is returned when asking for a card position the hand does not have.
	ErrCardIndexOutOfRange = errors.New("invalid card index")
)

// Hand is the ordered set of cards held by one side for a single round.
type Hand struct {
	cards cards.Stack
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{cards: make(cards.Stack, 0, MaxHandCards)}
}

// Add appends a card to the hand. A fourth card is rejected and the hand is left unchanged.
func (h *Hand) Add(card cards.Card) error {
	if len(h.cards) >= MaxHandCards {
		return fmt.Errorf("%w: cannot add %s", ErrHandFull, card)
	}
	h.cards = append(h.cards, card)
	return nil
}

// Score returns the baccarat total of the hand: the sum of card points, modulo 10.
func (h *Hand) Score() int {
	return score(h.cards)
}

// InitialScore returns the score of the first two cards only.
func (h *Hand) InitialScore() int {
	if len(h.cards) < 2 {
		return score(h.cards)
	}
	return score(h.cards[:2])
}

// CardAt returns the card at the zero-based position index.
func (h *Hand) CardAt(index int) (cards.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return cards.Card{}, fmt.Errorf("%w: %d (hand holds %d)", ErrCardIndexOutOfRange, index, len(h.cards))
	}
	return h.cards[index], nil
}

// ThirdCard returns the drawn third card, if the hand has one.
func (h *Hand) ThirdCard() (cards.Card, bool) {
	if len(h.cards) < 3 {
		return cards.Card{}, false
	}
	return h.cards[2], true
}

// IsNatural reports a two-card 8 or 9.
func (h *Hand) IsNatural() bool {
	if len(h.cards) != 2 {
		return false
	}
	s := h.Score()
	return s == 8 || s == 9
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() cards.Stack {
	out := make(cards.Stack, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) String() string {
	return h.cards.String()
}

func score(stack cards.Stack) int {
	total := 0
	for _, c := range stack {
		total += c.Points()
	}
	return total % 10
}
