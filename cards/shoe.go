package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidDeckCount is returned when a shoe is built with an unsupported number of decks.
	ErrInvalidDeckCount = errors.New("invalid number of decks for shoe")
	// ErrEmptyShoe is returned when dealing from a shoe with no cards left.
	ErrEmptyShoe = errors.New("shoe is empty")
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSeededShuffler returns a deterministic shuffler for the given seed
func NewSeededShuffler(seed int64) Shuffler {
	return rand.New(rand.NewSource(seed))
}

// ShoeOption configures a shoe
type ShoeOption func(*Shoe)

// WithShuffler sets the randomness source used by Shuffle
func WithShuffler(shuffler Shuffler) ShoeOption {
	return func(s *Shoe) {
		s.shuffler = shuffler
	}
}

// Shoe represents multiple decks of cards, dealt from the front
type Shoe struct {
	cards    Stack
	decks    int
	shuffler Shuffler
}

// NewShoe creates a new shoe with a given number of decks, in deck order.
// Only 6 and 8 deck shoes are allowed.
func NewShoe(numDecks int, opts ...ShoeOption) (*Shoe, error) {
	if numDecks != 6 && numDecks != 8 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDeckCount, numDecks)
	}

	cards := make(Stack, 0, numDecks*52)
	for i := 0; i < numDecks; i++ {
		cards = append(cards, NewDeck52()...)
	}

	shoe := &Shoe{
		cards:    cards,
		decks:    numDecks,
		shuffler: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(shoe)
	}

	return shoe, nil
}

// NewStackedShoe creates a shoe that deals exactly the given cards in order
func NewStackedShoe(cards Stack, opts ...ShoeOption) *Shoe {
	stacked := make(Stack, len(cards))
	copy(stacked, cards)

	shoe := &Shoe{
		cards:    stacked,
		shuffler: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(shoe)
	}

	return shoe
}

// Shuffle randomly permutes the cards left in the shoe
func (s *Shoe) Shuffle() {
	s.shuffler.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Deal removes and returns the front card of the shoe
func (s *Shoe) Deal() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Size returns the number of cards left in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Decks returns the number of decks the shoe was built from, 0 for a stacked shoe
func (s *Shoe) Decks() int {
	return s.decks
}
