package cards

// NewDeck52 creates a standard deck of 52 cards, suit by suit, Ace to King
func NewDeck52() Stack {
	deck := make(Stack, 0, len(Suits)*len(Values))
	for _, suit := range Suits {
		for _, value := range Values {
			deck.AddCard(Card{Suit: suit, Value: value})
		}
	}

	return deck
}
