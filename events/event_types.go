package events

import "github.com/lazharichir/baccarat/cards"

// Side identifies which hand a card was dealt to.
type Side string

const (
	SidePlayer Side = "player"
	SideBanker Side = "banker"
)

// SessionStarted is recorded once the shoe for a session has been shuffled.
type SessionStarted struct {
	SessionID string
	Decks     int
	ShoeSize  int
	Policy    string
}

func (e SessionStarted) EventName() string { return "session-started" }

// CardDealt is recorded for every card dealt in a round.
// Position is the zero-based index of the card within its hand.
type CardDealt struct {
	SessionID string
	RoundID   string
	Side      Side
	Card      cards.Card
	Position  int
}

func (e CardDealt) EventName() string { return "card-dealt" }

// RoundSettled is recorded when a round's winner is known.
type RoundSettled struct {
	SessionID   string
	RoundID     string
	Round       int
	PlayerScore int
	BankerScore int
	Outcome     string
	Natural     bool
}

func (e RoundSettled) EventName() string { return "round-settled" }

// SessionEnded is recorded when the game loop stops.
type SessionEnded struct {
	SessionID string
	Rounds    int
	Reason    string
}

func (e SessionEnded) EventName() string { return "session-ended" }
