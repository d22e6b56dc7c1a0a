package results

import (
	"testing"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []seat.Seat {
	return Merge([]seat.Seat{
		{
			SeatNo: "পঞ্চগড়-১",
			Results: []seat.PartyResult{
				{Party: "বিএনপি", Votes: 50000, IsDeclaredWinner: true, Candidate: "রহিম উদ্দিন"},
			},
		},
		{
			SeatNo: "পঞ্চগড়-২",
			Results: []seat.PartyResult{
				{Party: "জামায়াতে ইসলামী", Votes: 30000},
			},
		},
		{
			SeatNo:      "ঠাকুরগাঁও-১",
			IsSuspended: true,
		},
	})
}

func TestApply_NoFilterKeepsCatalogOrder(t *testing.T) {
	out := Apply(filterFixture(), Filter{})

	require.Len(t, out, 300)
	assert.Equal(t, "পঞ্চগড়-১", out[0].SeatNo)
	assert.Equal(t, "পঞ্চগড়-২", out[1].SeatNo)
	assert.Equal(t, "ঠাকুরগাঁও-১", out[2].SeatNo)
}

func TestApply_DivisionFilter(t *testing.T) {
	out := Apply(filterFixture(), Filter{Division: "রংপুর"})

	require.Len(t, out, 33)
	for _, s := range out {
		assert.Equal(t, "রংপুর", s.Division)
	}
}

func TestApply_DistrictFilter(t *testing.T) {
	out := Apply(filterFixture(), Filter{District: "পঞ্চগড়"})

	require.Len(t, out, 2)
	assert.Equal(t, "পঞ্চগড়-১", out[0].SeatNo)
	assert.Equal(t, "পঞ্চগড়-২", out[1].SeatNo)
}

func TestApply_SeatFilter(t *testing.T) {
	out := Apply(filterFixture(), Filter{Seat: "পঞ্চগড়-২"})

	require.Len(t, out, 1)
	assert.Equal(t, "পঞ্চগড়-২", out[0].SeatNo)
}

func TestApply_PartyFilterMatchesRecordedResults(t *testing.T) {
	out := Apply(filterFixture(), Filter{Party: "জামায়াতে ইসলামী"})

	require.Len(t, out, 1)
	assert.Equal(t, "পঞ্চগড়-২", out[0].SeatNo)
}

func TestApply_StatusFilters(t *testing.T) {
	seats := filterFixture()

	declared := Apply(seats, Filter{Status: FilterStatusDeclared})
	require.Len(t, declared, 1)
	assert.Equal(t, "পঞ্চগড়-১", declared[0].SeatNo)

	leading := Apply(seats, Filter{Status: FilterStatusLeading})
	require.Len(t, leading, 1)
	assert.Equal(t, "পঞ্চগড়-২", leading[0].SeatNo)

	suspended := Apply(seats, Filter{Status: FilterStatusSuspended})
	require.Len(t, suspended, 1)
	assert.Equal(t, "ঠাকুরগাঁও-১", suspended[0].SeatNo)

	pending := Apply(seats, Filter{Status: FilterStatusPending})
	assert.Len(t, pending, 297)
}

func TestApply_SearchMatchesSeatDistrictPartyCandidate(t *testing.T) {
	seats := filterFixture()

	bySeat := Apply(seats, Filter{Search: "পঞ্চগড়-১"})
	require.Len(t, bySeat, 1)

	byCandidate := Apply(seats, Filter{Search: "রহিম"})
	require.Len(t, byCandidate, 1)
	assert.Equal(t, "পঞ্চগড়-১", byCandidate[0].SeatNo)

	byParty := Apply(seats, Filter{Search: "জামায়াতে"})
	require.Len(t, byParty, 1)
	assert.Equal(t, "পঞ্চগড়-২", byParty[0].SeatNo)
}

func TestApply_FiltersCombine(t *testing.T) {
	out := Apply(filterFixture(), Filter{
		District: "পঞ্চগড়",
		Status:   FilterStatusDeclared,
	})

	require.Len(t, out, 1)
	assert.Equal(t, "পঞ্চগড়-১", out[0].SeatNo)
}
