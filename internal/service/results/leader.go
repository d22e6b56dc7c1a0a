package results

import (
	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/pkg/bangla"
	"github.com/li-cell/election-backend-go/internal/refdata"
)

// LeaderStatus classifies a seat's resolved outcome.
type LeaderStatus string

const (
	StatusDeclared  LeaderStatus = "declared"
	StatusLeading   LeaderStatus = "leading"
	StatusPending   LeaderStatus = "pending"
	StatusSuspended LeaderStatus = "suspended"
)

// ResolveLeader produces the single leading result of a seat. A declared
// winner is authoritative regardless of vote count, including zero. Otherwise
// the maximum-vote entry leads, provided that maximum is above zero. Equal
// maxima with no declaration resolve to the collation-smallest party name, a
// deterministic rule independent of results ordering. Suspended seats resolve
// to no leader at all, whatever stale flags their results carry.
func ResolveLeader(s seat.Seat) (seat.PartyResult, LeaderStatus) {
	if s.IsSuspended {
		return seat.PartyResult{}, StatusSuspended
	}

	for _, r := range s.Results {
		if r.IsDeclaredWinner {
			return r, StatusDeclared
		}
	}

	var leader seat.PartyResult
	found := false
	for _, r := range s.Results {
		if r.Votes <= 0 {
			continue
		}
		switch {
		case !found, r.Votes > leader.Votes:
			leader = r
			found = true
		case r.Votes == leader.Votes && bangla.Compare(r.Party, leader.Party) < 0:
			leader = r
		}
	}
	if !found {
		return seat.PartyResult{}, StatusPending
	}
	return leader, StatusLeading
}

// Merge lays live seat documents over the static catalog, in catalog order.
// Every catalog constituency appears exactly once; one with no document is an
// empty, non-suspended seat. Documents for seats outside the catalog are
// dropped.
func Merge(live []seat.Seat) []seat.Seat {
	byNo := make(map[string]seat.Seat, len(live))
	for _, s := range live {
		byNo[s.SeatNo] = s
	}

	merged := make([]seat.Seat, 0, refdata.TotalSeats())
	for _, entry := range refdata.Seats() {
		if s, ok := byNo[entry.SeatNo]; ok {
			// The catalog wins on hierarchy labels.
			s.Division = entry.Division
			s.District = entry.District
			merged = append(merged, s)
			continue
		}
		merged = append(merged, seat.Seat{
			SeatNo:   entry.SeatNo,
			Division: entry.Division,
			District: entry.District,
		})
	}
	return merged
}
