package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Value: Ace}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Suit: Hearts, Value: Ten}, false},
		{"Ten of Hearts lowercase", "10h", Card{Suit: Hearts, Value: Ten}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Suit: Diamonds, Value: Queen}, false},
		{"Queen of Diamonds uppercase", "QD", Card{Suit: Diamonds, Value: Queen}, false},
		{"Two of Clubs Unicode", "2♣", Card{Suit: Clubs, Value: Two}, false},
		{"Two of Clubs lowercase", "2c", Card{Suit: Clubs, Value: Two}, false},
		{"King of Hearts", "Kh", Card{Suit: Hearts, Value: King}, false},
		{"Nine of Hearts", "9h", Card{Suit: Hearts, Value: Nine}, false},

		// Invalid inputs
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid value", "11S", Card{}, true},
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Number too large", "100S", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestCard_Points(t *testing.T) {
	tests := []struct {
		value Value
		want  int
	}{
		{Ace, 1}, {Two, 2}, {Three, 3}, {Four, 4}, {Five, 5},
		{Six, 6}, {Seven, 7}, {Eight, 8}, {Nine, 9},
		{Ten, 0}, {Jack, 0}, {Queen, 0}, {King, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			for _, suit := range Suits {
				assert.Equal(t, tt.want, Card{Suit: suit, Value: tt.value}.Points(), "suit %s", suit)
			}
		})
	}
}

func TestCard_PointsAlwaysInRange(t *testing.T) {
	for _, c := range NewDeck52() {
		assert.GreaterOrEqual(t, c.Points(), 0, c.String())
		assert.LessOrEqual(t, c.Points(), 9, c.String())
	}
}

func TestValue_Rank(t *testing.T) {
	assert.Equal(t, 1, Ace.Rank())
	assert.Equal(t, 10, Ten.Rank())
	assert.Equal(t, 13, King.Rank())
	assert.Equal(t, 0, Value("X").Rank())

	for i := 1; i < len(Values); i++ {
		assert.Less(t, Values[i-1].Rank(), Values[i].Rank(), "values must be ordered by face value")
	}
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", Card{Suit: Spades, Value: Ace}.String())
	assert.Equal(t, "10♥", Card{Suit: Hearts, Value: Ten}.String())
}
