package results

import (
	"sort"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/pkg/bangla"
	"github.com/li-cell/election-backend-go/internal/refdata"
)

// ChartPoint is one bar of the party win-count chart.
type ChartPoint struct {
	Party string `json:"party"`
	Wins  int    `json:"wins"`
	Color string `json:"color"`
}

// defaultBarColor is used for parties outside the static color table.
const defaultBarColor = "#757575"

// BuildSeries shapes declared wins per party into chart-ready points, most
// wins first, ties in collation order.
func BuildSeries(seats []seat.Seat) []ChartPoint {
	wins := make(map[string]int)
	for _, s := range seats {
		leader, status := ResolveLeader(s)
		if status == StatusDeclared {
			wins[leader.Party]++
		}
	}

	points := make([]ChartPoint, 0, len(wins))
	for party, n := range wins {
		color := defaultBarColor
		if p, ok := refdata.PartyByName(party); ok && p.Color != "" {
			color = p.Color
		}
		points = append(points, ChartPoint{Party: party, Wins: n, Color: color})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Wins != points[j].Wins {
			return points[i].Wins > points[j].Wins
		}
		return bangla.Compare(points[i].Party, points[j].Party) < 0
	})
	return points
}
