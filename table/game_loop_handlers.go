package table

import (
	"fmt"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/cards"
	"github.com/lazharichir/baccarat/events"
	"github.com/sanity-io/litter"
)

// roundDump shows the hands' cards, which litter hides by default
var roundDump = litter.Options{HidePrivateFields: false, StripPackageNames: true}

// State handler implementations

// handleDealingState plays one round, prints it and records it
func (g *GameLoop) handleDealingState() error {
	number := g.tally.Rounds + 1

	round, err := baccarat.PlayRound(g.shoe, baccarat.WithPolicy(g.policy))
	if err != nil {
		g.logger.Printf("session %s: round %d failed with %d cards left: %v", g.sessionID, number, g.shoe.Size(), err)
		return fmt.Errorf("round %d: %w", number, err)
	}

	g.tally.Record(round.Outcome, round.Natural)
	PrintRound(g.out, number, round)

	if g.verbose {
		g.logger.Printf("round %d:\n%s", number, roundDump.Sdump(round))
	}

	return g.recordRound(number, round)
}

// handleAwaitingPlayerState asks whether to deal another round
func (g *GameLoop) handleAwaitingPlayerState() (bool, error) {
	again, err := g.prompter.Continue()
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return again, nil
}

// recordRound appends the dealt cards and the result of a round to the event store
func (g *GameLoop) recordRound(number int, round *baccarat.Round) error {
	var evs []events.Event

	sides := []struct {
		side  events.Side
		cards []cards.Card
	}{
		{events.SidePlayer, round.Player.Cards()},
		{events.SideBanker, round.Banker.Cards()},
	}

	// same order the cards left the shoe
	for i := 0; i < baccarat.MaxHandCards; i++ {
		for _, s := range sides {
			if i >= len(s.cards) {
				continue
			}
			evs = append(evs, events.CardDealt{
				SessionID: g.sessionID,
				RoundID:   round.ID,
				Side:      s.side,
				Card:      s.cards[i],
				Position:  i,
			})
		}
	}

	evs = append(evs, events.RoundSettled{
		SessionID:   g.sessionID,
		RoundID:     round.ID,
		Round:       number,
		PlayerScore: round.Player.Score(),
		BankerScore: round.Banker.Score(),
		Outcome:     round.Outcome.String(),
		Natural:     round.Natural,
	})

	for _, e := range evs {
		if err := g.eventStore.Append(e); err != nil {
			return fmt.Errorf("failed to record %s: %w", e.EventName(), err)
		}
	}
	return nil
}
