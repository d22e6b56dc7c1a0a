package results

import (
	"testing"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declaredSeat(seatNo, party string, votes int64) seat.Seat {
	return seat.Seat{
		SeatNo: seatNo,
		Results: []seat.PartyResult{
			{Party: party, Votes: votes, IsDeclaredWinner: true},
		},
	}
}

func TestComputeRollup_CatalogDenominators(t *testing.T) {
	merged := Merge([]seat.Seat{
		declaredSeat("পঞ্চগড়-১", "বিএনপি", 50000),
	})

	rollup := ComputeRollup(merged, Filter{})

	assert.Equal(t, 300, rollup.National.TotalSeats)
	assert.Equal(t, 1, rollup.National.Counted)
	assert.Equal(t, "বিএনপি", rollup.National.Leader)

	require.Len(t, rollup.Divisions, 8)
	rangpur := rollup.Divisions[0]
	assert.Equal(t, "রংপুর", rangpur.Name)
	assert.Equal(t, 33, rangpur.TotalSeats)
	assert.Equal(t, 1, rangpur.Counted)

	panchagarh := rangpur.Districts[0]
	assert.Equal(t, "পঞ্চগড়", panchagarh.Name)
	assert.Equal(t, 2, panchagarh.TotalSeats)
	assert.Equal(t, 1, panchagarh.Counted)
	assert.InDelta(t, 50.0, panchagarh.PercentComplete, 0.001)
	require.Len(t, panchagarh.Seats, 2)
	assert.Equal(t, StatusDeclared, panchagarh.Seats[0].Status)
	assert.Equal(t, refdata.LabelPending, panchagarh.Seats[1].Party)
}

func TestComputeRollup_EmptyRegionCountsZeroOfCatalog(t *testing.T) {
	rollup := ComputeRollup(Merge(nil), Filter{})

	assert.Equal(t, 0, rollup.National.Counted)
	assert.Equal(t, refdata.LabelPending, rollup.National.Leader)
	assert.Zero(t, rollup.National.PercentComplete)

	for _, div := range rollup.Divisions {
		assert.Equal(t, refdata.SeatCountOfDivision(div.Name), div.TotalSeats)
		assert.Equal(t, 0, div.Counted)
	}
}

func TestComputeRollup_LeadingSeatsDoNotCount(t *testing.T) {
	merged := Merge([]seat.Seat{
		{
			SeatNo: "পঞ্চগড়-১",
			Results: []seat.PartyResult{
				{Party: "বিএনপি", Votes: 50000},
			},
		},
	})

	rollup := ComputeRollup(merged, Filter{})

	assert.Equal(t, 0, rollup.National.Counted)
	line := rollup.Divisions[0].Districts[0].Seats[0]
	assert.Equal(t, StatusLeading, line.Status)
	assert.Equal(t, "বিএনপি", line.Party)
}

func TestComputeRollup_DivisionFilterNarrowsBranches(t *testing.T) {
	rollup := ComputeRollup(Merge(nil), Filter{Division: "খুলনা"})

	require.Len(t, rollup.Divisions, 1)
	assert.Equal(t, "খুলনা", rollup.Divisions[0].Name)
	assert.Len(t, rollup.Divisions[0].Districts, 10)
	// The national denominator is unaffected by scope.
	assert.Equal(t, 300, rollup.National.TotalSeats)
}

func TestComputeRollup_PartyFilterCountsOnlyThatParty(t *testing.T) {
	merged := Merge([]seat.Seat{
		declaredSeat("পঞ্চগড়-১", "বিএনপি", 50000),
		declaredSeat("পঞ্চগড়-২", "জামায়াতে ইসলামী", 40000),
	})

	rollup := ComputeRollup(merged, Filter{Party: "জামায়াতে ইসলামী"})

	assert.Equal(t, 1, rollup.National.Counted)
	assert.Equal(t, "জামায়াতে ইসলামী", rollup.National.Leader)
}

func TestComputeRollup_SuspendedModeCountsSuspendedSeats(t *testing.T) {
	merged := Merge([]seat.Seat{
		declaredSeat("পঞ্চগড়-১", "বিএনপি", 50000),
		{SeatNo: "পঞ্চগড়-২", IsSuspended: true},
		{SeatNo: "ঠাকুরগাঁও-১", IsSuspended: true},
	})

	rollup := ComputeRollup(merged, Filter{Status: FilterStatusSuspended})

	assert.Equal(t, 2, rollup.National.Counted)
	assert.Equal(t, refdata.LabelSuspended, rollup.National.Leader)

	panchagarh := rollup.Divisions[0].Districts[0]
	assert.Equal(t, 1, panchagarh.Counted)
	assert.Equal(t, refdata.LabelSuspended, panchagarh.Seats[1].Party)
}

func TestComputeRollup_TiedWinCountsResolveByCollation(t *testing.T) {
	merged := Merge([]seat.Seat{
		declaredSeat("পঞ্চগড়-১", "জামায়াতে ইসলামী", 50000),
		declaredSeat("পঞ্চগড়-২", "ইসলামী আন্দোলন বাংলাদেশ", 40000),
	})

	rollup := ComputeRollup(merged, Filter{})

	assert.Equal(t, 2, rollup.National.Counted)
	assert.Equal(t, "ইসলামী আন্দোলন বাংলাদেশ", rollup.National.Leader)
}
