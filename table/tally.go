package table

import (
	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/events"
)

// Tally counts the results of a session
type Tally struct {
	Rounds     int
	PlayerWins int
	BankerWins int
	Ties       int
	Naturals   int
}

// Record adds one settled round to the tally
func (t *Tally) Record(outcome baccarat.Outcome, natural bool) {
	t.Rounds++
	switch outcome {
	case baccarat.OutcomePlayer:
		t.PlayerWins++
	case baccarat.OutcomeBanker:
		t.BankerWins++
	default:
		t.Ties++
	}
	if natural {
		t.Naturals++
	}
}

// TallyFromEvents rebuilds a tally from the RoundSettled events of a session
func TallyFromEvents(evs []events.Event) Tally {
	var t Tally
	for _, e := range evs {
		switch ev := e.(type) {
		case events.RoundSettled:
			t.Record(baccarat.Outcome(ev.Outcome), ev.Natural)
		case *events.RoundSettled:
			t.Record(baccarat.Outcome(ev.Outcome), ev.Natural)
		}
	}
	return t
}
