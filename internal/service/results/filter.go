package results

import (
	"strings"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
)

// Filter holds the active view filters. Zero values mean "no restriction".
type Filter struct {
	Division string
	District string
	Seat     string
	Party    string
	Status   string
	Search   string
}

// Status filter values.
const (
	FilterStatusDeclared  = "declared"
	FilterStatusLeading   = "leading"
	FilterStatusPending   = "pending"
	FilterStatusSuspended = "suspended"
)

// Apply narrows a merged seat list to the filter scope. The input order is
// preserved (catalog order).
func Apply(seats []seat.Seat, f Filter) []seat.Seat {
	out := make([]seat.Seat, 0, len(seats))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, s := range seats {
		if f.Division != "" && s.Division != f.Division {
			continue
		}
		if f.District != "" && s.District != f.District {
			continue
		}
		if f.Seat != "" && s.SeatNo != f.Seat {
			continue
		}
		if f.Party != "" && s.ResultOf(f.Party) == nil {
			continue
		}
		if f.Status != "" && !matchesStatus(s, f.Status) {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesStatus(s seat.Seat, status string) bool {
	_, resolved := ResolveLeader(s)
	switch status {
	case FilterStatusDeclared:
		return resolved == StatusDeclared
	case FilterStatusLeading:
		return resolved == StatusLeading
	case FilterStatusPending:
		return resolved == StatusPending
	case FilterStatusSuspended:
		return resolved == StatusSuspended
	}
	return true
}

func matchesSearch(s seat.Seat, search string) bool {
	if strings.Contains(strings.ToLower(s.SeatNo), search) ||
		strings.Contains(strings.ToLower(s.District), search) ||
		strings.Contains(strings.ToLower(s.Division), search) {
		return true
	}
	for _, r := range s.Results {
		if strings.Contains(strings.ToLower(r.Party), search) ||
			strings.Contains(strings.ToLower(r.Candidate), search) {
			return true
		}
	}
	return false
}
