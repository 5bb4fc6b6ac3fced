package baccarat

import "fmt"

// PlayerStandsOn is the lowest two-card total on which the player stands.
const PlayerStandsOn = 6

// BankerPolicy decides how the banker plays when the player stood on two cards.
// When the player drew, every policy uses the third-card table below.
type BankerPolicy string

const (
	// LiteralPolicy: with no player third card the banker draws only on 0-2.
	LiteralPolicy BankerPolicy = "literal"
	// StandardPolicy: with no player third card the banker draws on 0-5 and stands on 6-7.
	StandardPolicy BankerPolicy = "standard"
)

// ParsePolicy converts a configuration string into a BankerPolicy.
func ParsePolicy(s string) (BankerPolicy, error) {
	switch p := BankerPolicy(s); p {
	case LiteralPolicy, StandardPolicy:
		return p, nil
	case "":
		return LiteralPolicy, nil
	default:
		return "", fmt.Errorf("unknown banker policy %q", s)
	}
}

// bankerThirdCard is the banker's decision when the player drew a third card.
// Row is the banker's two-card total, column is the value of the player's third card.
//
//	P3:  0123456789
var bankerThirdCard = [8]string{
	0: "DDDDDDDDDD",
	1: "DDDDDDDDDD",
	2: "DDDDDDDDDD",
	3: "DDDDDDDDSD",
	4: "SSDDDDDDSS",
	5: "SSSSDDDDSS",
	6: "SSSSSSDDSS",
	7: "SSSSSSSSSS",
}

// stoodDrawLimit is the highest banker total that draws when the player stood.
var stoodDrawLimit = map[BankerPolicy]int{
	LiteralPolicy:  2,
	StandardPolicy: 5,
}

// PlayerDraws reports whether the player takes a third card on the given two-card total.
func PlayerDraws(playerScore int) bool {
	return playerScore < PlayerStandsOn
}

// BankerDraws reports whether the banker takes a third card. bankerScore is the
// banker's two-card total; p3 is only consulted when playerDrew is true.
func (p BankerPolicy) BankerDraws(bankerScore, p3 int, playerDrew bool) bool {
	if bankerScore < 0 || bankerScore >= len(bankerThirdCard) {
		return false
	}

	if !playerDrew {
		limit, ok := stoodDrawLimit[p]
		if !ok {
			limit = stoodDrawLimit[LiteralPolicy]
		}
		return bankerScore <= limit
	}

	row := bankerThirdCard[bankerScore]
	if p3 < 0 || p3 >= len(row) {
		return false
	}
	return row[p3] == 'D'
}
