package results

import (
	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/pkg/bangla"
	"github.com/li-cell/election-backend-go/internal/refdata"
)

// Tally is one roll-up line at any administrative level. TotalSeats always
// comes from the static catalog, never from live documents, so regions with
// missing documents still count toward the denominator. Counted is the number
// of declared-winner seats in scope, or the suspended-seat count when the
// suspended status filter is active.
type Tally struct {
	Name            string  `json:"name"`
	TotalSeats      int     `json:"totalSeats"`
	Counted         int     `json:"counted"`
	Leader          string  `json:"leader"`
	PercentComplete float64 `json:"percentComplete"`
}

// SeatLine is one constituency row inside a district roll-up.
type SeatLine struct {
	SeatNo string       `json:"seatNo"`
	Index  int          `json:"index"`
	Status LeaderStatus `json:"status"`
	Party  string       `json:"party"`
	Votes  int64        `json:"votes"`
}

// DistrictRollup nests the per-seat lines under a district tally.
type DistrictRollup struct {
	Tally
	Seats []SeatLine `json:"seats"`
}

// DivisionRollup nests district roll-ups under a division tally.
type DivisionRollup struct {
	Tally
	Districts []DistrictRollup `json:"districts"`
}

// Rollup is the full hierarchy: national, then divisions, then districts,
// then seats.
type Rollup struct {
	National  Tally            `json:"national"`
	Divisions []DivisionRollup `json:"divisions"`
}

// ComputeRollup rolls merged seats up into the administrative hierarchy.
// The Division/District fields of the filter narrow which branches appear;
// Party and Status change what is counted: a party
// filter counts only that party's declared wins, the suspended status filter
// replaces declared counts with suspended-seat counts.
func ComputeRollup(merged []seat.Seat, f Filter) Rollup {
	byNo := make(map[string]seat.Seat, len(merged))
	for _, s := range merged {
		byNo[s.SeatNo] = s
	}

	suspendedMode := f.Status == FilterStatusSuspended

	var rollup Rollup
	national := newCounter()

	for _, division := range refdata.Divisions {
		if f.Division != "" && division != f.Division {
			continue
		}
		divCounter := newCounter()
		var districts []DistrictRollup

		for _, district := range refdata.DistrictsOfDivision(division) {
			if f.District != "" && district != f.District {
				continue
			}
			distCounter := newCounter()
			var lines []SeatLine

			for _, entry := range refdata.SeatsOfDistrict(district) {
				s := byNo[entry.SeatNo]
				leader, status := ResolveLeader(s)
				lines = append(lines, seatLine(entry, leader, status))

				switch {
				case suspendedMode:
					if status == StatusSuspended {
						distCounter.count++
						divCounter.count++
						national.count++
					}
				case status == StatusDeclared:
					if f.Party != "" && leader.Party != f.Party {
						continue
					}
					distCounter.add(leader.Party)
					divCounter.add(leader.Party)
					national.add(leader.Party)
				}
			}

			districts = append(districts, DistrictRollup{
				Tally: distCounter.tally(district, refdata.SeatCountOfDistrict(district), f),
				Seats: lines,
			})
		}

		rollup.Divisions = append(rollup.Divisions, DivisionRollup{
			Tally:     divCounter.tally(division, refdata.SeatCountOfDivision(division), f),
			Districts: districts,
		})
	}

	rollup.National = national.tally("জাতীয়", refdata.TotalSeats(), f)
	return rollup
}

func seatLine(entry refdata.SeatEntry, leader seat.PartyResult, status LeaderStatus) SeatLine {
	line := SeatLine{
		SeatNo: entry.SeatNo,
		Index:  entry.Index,
		Status: status,
	}
	switch status {
	case StatusSuspended:
		line.Party = refdata.LabelSuspended
	case StatusPending:
		line.Party = refdata.LabelPending
	default:
		line.Party = leader.Party
		line.Votes = leader.Votes
	}
	return line
}

// counter accumulates declared wins per party at one level.
type counter struct {
	count int
	wins  map[string]int
}

func newCounter() *counter {
	return &counter{wins: make(map[string]int)}
}

func (c *counter) add(party string) {
	c.count++
	c.wins[party]++
}

func (c *counter) tally(name string, totalSeats int, f Filter) Tally {
	t := Tally{
		Name:       name,
		TotalSeats: totalSeats,
		Counted:    c.count,
		Leader:     c.leaderLabel(f),
	}
	if totalSeats > 0 {
		t.PercentComplete = float64(c.count) / float64(totalSeats) * 100
	}
	return t
}

func (c *counter) leaderLabel(f Filter) string {
	if f.Status == FilterStatusSuspended {
		if c.count > 0 {
			return refdata.LabelSuspended
		}
		return refdata.LabelPending
	}
	if f.Party != "" {
		if c.wins[f.Party] > 0 {
			return f.Party
		}
		return refdata.LabelPending
	}

	leader := ""
	best := 0
	for party, wins := range c.wins {
		if wins > best || (wins == best && best > 0 && bangla.Compare(party, leader) < 0) {
			leader = party
			best = wins
		}
	}
	if leader == "" {
		return refdata.LabelPending
	}
	return leader
}
