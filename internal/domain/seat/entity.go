package seat

import "time"

// PartyResult is one party's tally inside a seat document. IsDeclaredWinner is
// set only by an explicit admin action and is independent of the vote count.
type PartyResult struct {
	Party            string `bson:"party" json:"party"`
	Votes            int64  `bson:"votes" json:"votes"`
	Candidate        string `bson:"candidate,omitempty" json:"candidate,omitempty"`
	Symbol           string `bson:"symbol,omitempty" json:"symbol,omitempty"`
	IsDeclaredWinner bool   `bson:"isDeclaredWinner" json:"isDeclaredWinner"`
}

// Seat is one constituency document in the seats collection, keyed by seat
// name. A constituency absent from the collection is an empty, non-suspended
// seat; the static catalog decides existence.
type Seat struct {
	SeatNo       string        `bson:"_id" json:"seatNo"`
	Division     string        `bson:"division" json:"division"`
	District     string        `bson:"district" json:"district"`
	Results      []PartyResult `bson:"results" json:"results"`
	TotalVotes   int64         `bson:"totalVotes" json:"totalVotes"`
	IsSuspended  bool          `bson:"isSuspended" json:"isSuspended"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt"`
	TotalVoters  int64         `bson:"totalVoters,omitempty" json:"totalVoters,omitempty"`
	TotalCenters int           `bson:"totalCenters,omitempty" json:"totalCenters,omitempty"`
	Upazilas     []string      `bson:"upazilas,omitempty" json:"upazilas,omitempty"`
}

// SumVotes recomputes the vote total from the results list. TotalVotes is
// never trusted independently; every mutation re-derives it from here.
func (s *Seat) SumVotes() int64 {
	var total int64
	for _, r := range s.Results {
		total += r.Votes
	}
	return total
}

// ResultOf returns a pointer into Results for the given party, nil when the
// party has no row.
func (s *Seat) ResultOf(party string) *PartyResult {
	for i := range s.Results {
		if s.Results[i].Party == party {
			return &s.Results[i]
		}
	}
	return nil
}
