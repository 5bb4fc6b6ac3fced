package baccarat

// Outcome is the result of a round
type Outcome string

const (
	OutcomePlayer Outcome = "Player"
	OutcomeBanker Outcome = "Banker"
	OutcomeTie    Outcome = "Tie"
)

func (o Outcome) String() string {
	return string(o)
}

// compare decides the outcome from two final scores: the higher score wins.
func compare(playerScore, bankerScore int) Outcome {
	switch {
	case playerScore > bankerScore:
		return OutcomePlayer
	case bankerScore > playerScore:
		return OutcomeBanker
	default:
		return OutcomeTie
	}
}
