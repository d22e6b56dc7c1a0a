package results

import (
	"testing"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLeader_DeclaredBeatsHigherVotes(t *testing.T) {
	s := seat.Seat{
		SeatNo: "ঢাকা-১",
		Results: []seat.PartyResult{
			{Party: "বিএনপি", Votes: 90000},
			{Party: "জামায়াতে ইসলামী", Votes: 45000, IsDeclaredWinner: true},
		},
	}

	leader, status := ResolveLeader(s)

	assert.Equal(t, StatusDeclared, status)
	assert.Equal(t, "জামায়াতে ইসলামী", leader.Party)
}

func TestResolveLeader_DeclaredWithZeroVotes(t *testing.T) {
	s := seat.Seat{
		SeatNo: "ঢাকা-১",
		Results: []seat.PartyResult{
			{Party: "বিএনপি", Votes: 0, IsDeclaredWinner: true},
		},
	}

	leader, status := ResolveLeader(s)

	assert.Equal(t, StatusDeclared, status)
	assert.Equal(t, "বিএনপি", leader.Party)
}

func TestResolveLeader_MaxVotesLeads(t *testing.T) {
	s := seat.Seat{
		SeatNo: "ঢাকা-১",
		Results: []seat.PartyResult{
			{Party: "বিএনপি", Votes: 30000},
			{Party: "জাতীয় নাগরিক পার্টি", Votes: 52000},
			{Party: "ইসলামী আন্দোলন বাংলাদেশ", Votes: 11000},
		},
	}

	leader, status := ResolveLeader(s)

	assert.Equal(t, StatusLeading, status)
	assert.Equal(t, "জাতীয় নাগরিক পার্টি", leader.Party)
	assert.Equal(t, int64(52000), leader.Votes)
}

func TestResolveLeader_AllZeroVotesIsPending(t *testing.T) {
	s := seat.Seat{
		SeatNo: "ঢাকা-১",
		Results: []seat.PartyResult{
			{Party: "বিএনপি", Votes: 0},
			{Party: "জামায়াতে ইসলামী", Votes: 0},
		},
	}

	_, status := ResolveLeader(s)

	assert.Equal(t, StatusPending, status)
}

func TestResolveLeader_NoResultsIsPending(t *testing.T) {
	_, status := ResolveLeader(seat.Seat{SeatNo: "ঢাকা-১"})

	assert.Equal(t, StatusPending, status)
}

func TestResolveLeader_TieResolvesByCollation(t *testing.T) {
	s := seat.Seat{
		SeatNo: "ঢাকা-১",
		Results: []seat.PartyResult{
			{Party: "জামায়াতে ইসলামী", Votes: 40000},
			{Party: "ইসলামী আন্দোলন বাংলাদেশ", Votes: 40000},
		},
	}

	leader, status := ResolveLeader(s)

	assert.Equal(t, StatusLeading, status)
	assert.Equal(t, "ইসলামী আন্দোলন বাংলাদেশ", leader.Party)

	// The order of the results slice must not change the outcome.
	s.Results[0], s.Results[1] = s.Results[1], s.Results[0]
	leader, _ = ResolveLeader(s)
	assert.Equal(t, "ইসলামী আন্দোলন বাংলাদেশ", leader.Party)
}

func TestResolveLeader_SuspendedOverridesEverything(t *testing.T) {
	s := seat.Seat{
		SeatNo:      "ঢাকা-১",
		IsSuspended: true,
		Results: []seat.PartyResult{
			{Party: "বিএনপি", Votes: 90000, IsDeclaredWinner: true},
		},
	}

	leader, status := ResolveLeader(s)

	assert.Equal(t, StatusSuspended, status)
	assert.Empty(t, leader.Party)
}

func TestMerge_EveryCatalogSeatAppearsOnce(t *testing.T) {
	merged := Merge(nil)

	require.Len(t, merged, 300)
	seen := make(map[string]bool, len(merged))
	for _, s := range merged {
		assert.False(t, seen[s.SeatNo], "duplicate seat %s", s.SeatNo)
		seen[s.SeatNo] = true
		assert.NotEmpty(t, s.Division)
		assert.NotEmpty(t, s.District)
	}
}

func TestMerge_LiveDocumentOverlaysCatalog(t *testing.T) {
	live := []seat.Seat{
		{
			SeatNo: "পঞ্চগড়-১",
			Results: []seat.PartyResult{
				{Party: "বিএনপি", Votes: 70000},
			},
		},
	}

	merged := Merge(live)

	require.Len(t, merged, 300)
	assert.Equal(t, "পঞ্চগড়-১", merged[0].SeatNo)
	assert.Equal(t, "রংপুর", merged[0].Division)
	require.Len(t, merged[0].Results, 1)
	assert.Equal(t, int64(70000), merged[0].Results[0].Votes)
	assert.Empty(t, merged[1].Results)
}

func TestMerge_UnknownSeatDropped(t *testing.T) {
	live := []seat.Seat{{SeatNo: "নেই-৯৯"}}

	merged := Merge(live)

	assert.Len(t, merged, 300)
	for _, s := range merged {
		assert.NotEqual(t, "নেই-৯৯", s.SeatNo)
	}
}

func TestMerge_CatalogWinsOnHierarchyLabels(t *testing.T) {
	live := []seat.Seat{{SeatNo: "পঞ্চগড়-১", Division: "ভুল", District: "ভুল"}}

	merged := Merge(live)

	assert.Equal(t, "রংপুর", merged[0].Division)
	assert.Equal(t, "পঞ্চগড়", merged[0].District)
}
