package cards

import "fmt"

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Value: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	// suit symbols are multi-byte, so split on the last rune rather than the last byte
	runes := []rune(s)
	suitPart, valuePart := string(runes[len(runes)-1:]), string(runes[:len(runes)-1])

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", suitPart)
	}

	for _, v := range Values {
		if string(v) == valuePart {
			return Card{Suit: suit, Value: v}, nil
		}
	}

	return Card{}, fmt.Errorf("invalid card value: %q", valuePart)
}

// MustCardFromString is like CardFromString but panics on malformed input.
func MustCardFromString(s string) Card {
	c, err := CardFromString(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit represents a card suit
type Suit string

const (
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
	Hearts   Suit = "♥"
	Spades   Suit = "♠"
)

// Suits lists the four suits in deck order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Value represents a card value (rank)
type Value string

const (
	Ace   Value = "A"
	Two   Value = "2"
	Three Value = "3"
	Four  Value = "4"
	Five  Value = "5"
	Six   Value = "6"
	Seven Value = "7"
	Eight Value = "8"
	Nine  Value = "9"
	Ten   Value = "10"
	Jack  Value = "J"
	Queen Value = "Q"
	King  Value = "K"
)

// Values lists the thirteen values ordered by face value, Ace low.
var Values = []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Rank returns the face-value position of v, 1 for Ace through 13 for King.
// Unknown values rank 0.
func (v Value) Rank() int {
	for i, candidate := range Values {
		if candidate == v {
			return i + 1
		}
	}
	return 0
}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Points returns the baccarat value of the card: Ace counts 1, Two to Nine
// count their face value, and Ten and the court cards count 0.
func (c Card) Points() int {
	rank := c.Value.Rank()
	if rank >= 10 {
		return 0
	}
	return rank
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}
