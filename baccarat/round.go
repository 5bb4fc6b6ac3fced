package baccarat

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lazharichir/baccarat/cards"
)

// MinCardsForRound is the fewest cards a shoe must hold to start a round:
// four for the initial deal plus one third card per side.
const MinCardsForRound = 6

// Dealer hands out cards one at a time. *cards.Shoe implements it.
type Dealer interface {
	Deal() (cards.Card, error)
}

// Round is a finished round: both hands as dealt and the outcome.
type Round struct {
	ID      string
	Player  *Hand
	Banker  *Hand
	Outcome Outcome
	Natural bool
}

// PlayerDrew reports whether the player took a third card
func (r *Round) PlayerDrew() bool {
	return r.Player.Len() == MaxHandCards
}

// BankerDrew reports whether the banker took a third card
func (r *Round) BankerDrew() bool {
	return r.Banker.Len() == MaxHandCards
}

type roundConfig struct {
	policy BankerPolicy
}

// RoundOption configures PlayRound
type RoundOption func(*roundConfig)

// WithPolicy selects the banker policy used when the player stands
func WithPolicy(policy BankerPolicy) RoundOption {
	return func(c *roundConfig) {
		c.policy = policy
	}
}

// PlayRound deals one round of punto banco from dealer and settles it.
// Any deal failure ends the round and is returned to the caller.
func PlayRound(dealer Dealer, opts ...RoundOption) (*Round, error) {
	cfg := roundConfig{policy: LiteralPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}

	round := &Round{
		ID:     uuid.NewString(),
		Player: NewHand(),
		Banker: NewHand(),
	}

	// player, banker, player, banker
	for i := 0; i < 2; i++ {
		if err := dealTo(dealer, round.Player); err != nil {
			return nil, fmt.Errorf("dealing initial cards: %w", err)
		}
		if err := dealTo(dealer, round.Banker); err != nil {
			return nil, fmt.Errorf("dealing initial cards: %w", err)
		}
	}

	playerScore := round.Player.Score()
	bankerScore := round.Banker.Score()

	if round.Player.IsNatural() || round.Banker.IsNatural() {
		round.Natural = true
		round.Outcome = compare(playerScore, bankerScore)
		return round, nil
	}

	playerDrew := false
	p3 := 0
	if PlayerDraws(playerScore) {
		if err := dealTo(dealer, round.Player); err != nil {
			return nil, fmt.Errorf("dealing player third card: %w", err)
		}
		third, _ := round.Player.ThirdCard()
		playerDrew = true
		p3 = third.Points()
		playerScore = round.Player.Score()
	}

	// the banker decides on its two-card total, not on anything drawn since
	if cfg.policy.BankerDraws(bankerScore, p3, playerDrew) {
		if err := dealTo(dealer, round.Banker); err != nil {
			return nil, fmt.Errorf("dealing banker third card: %w", err)
		}
		bankerScore = round.Banker.Score()
	}

	round.Outcome = compare(playerScore, bankerScore)
	return round, nil
}

func dealTo(dealer Dealer, hand *Hand) error {
	card, err := dealer.Deal()
	if err != nil {
		return err
	}
	return hand.Add(card)
}
