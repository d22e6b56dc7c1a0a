package results

import (
	"fmt"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/pkg/bangla"
	"github.com/li-cell/election-backend-go/internal/refdata"
)

// TickerLimit caps the breaking-news ticker length.
const TickerLimit = 15

// BuildTicker walks the filtered seats in catalog order and emits at most
// TickerLimit status strings. Seats with no votes and no declaration are
// skipped entirely. The slice is rebuilt from scratch on every call.
func BuildTicker(seats []seat.Seat) []string {
	ticker := make([]string, 0, TickerLimit)
	for _, s := range seats {
		if len(ticker) == TickerLimit {
			break
		}
		index := 0
		if entry, ok := refdata.SeatByNo(s.SeatNo); ok {
			index = entry.Index
		}

		leader, status := ResolveLeader(s)
		switch status {
		case StatusSuspended:
			ticker = append(ticker, fmt.Sprintf("%s (%s): ভোট গ্রহণ স্থগিত",
				s.SeatNo, bangla.Digits(index)))
		case StatusDeclared:
			ticker = append(ticker, fmt.Sprintf("%s (%s): %s বিজয়ী (%s ভোট)",
				s.SeatNo, bangla.Digits(index), leader.Party, bangla.Digits64(leader.Votes)))
		case StatusLeading:
			ticker = append(ticker, fmt.Sprintf("%s (%s): %s এগিয়ে (%s)",
				s.SeatNo, bangla.Digits(index), leader.Party, bangla.Digits64(leader.Votes)))
		}
	}
	return ticker
}
