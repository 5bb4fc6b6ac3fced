package table

import (
	"fmt"
	"io"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/lazharichir/baccarat/cards"
)

// PrintRound writes the two-card hands, any third cards and the winner of a round.
func PrintRound(w io.Writer, number int, round *baccarat.Round) {
	player, banker := round.Player.Cards(), round.Banker.Cards()

	fmt.Fprintf(w, "\nRound %d\n", number)
	fmt.Fprintf(w, "Player Hand: %s = %d\n", cards.Stack(player[:2]), round.Player.InitialScore())
	fmt.Fprintf(w, "Banker Hand: %s = %d\n", cards.Stack(banker[:2]), round.Banker.InitialScore())

	if round.PlayerDrew() {
		fmt.Fprintln(w, "Dealing third card to player...")
	}
	if round.BankerDrew() {
		fmt.Fprintln(w, "Dealing third card to banker...")
	}

	if round.PlayerDrew() {
		fmt.Fprintf(w, "Player Hand: %s = %d\n", round.Player, round.Player.Score())
	}
	if round.BankerDrew() {
		fmt.Fprintf(w, "Banker Hand: %s = %d\n", round.Banker, round.Banker.Score())
	}

	if round.Outcome == baccarat.OutcomeTie {
		fmt.Fprint(w, "Tie\n\n")
	} else {
		fmt.Fprintf(w, "%s wins!\n\n", round.Outcome)
	}
}

// PrintSummary writes the end-of-game totals.
func PrintSummary(w io.Writer, t Tally) {
	fmt.Fprintln(w, "\nGame Summary:")
	fmt.Fprintf(w, "Rounds Played: %d\n", t.Rounds)
	fmt.Fprintf(w, "Player Wins: %d\n", t.PlayerWins)
	fmt.Fprintf(w, "Banker Wins: %d\n", t.BankerWins)
	fmt.Fprintf(w, "Ties: %d\n", t.Ties)
}
