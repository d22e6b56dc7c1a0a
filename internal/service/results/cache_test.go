package results

import (
	"context"
	"errors"
	"testing"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeatRepo struct {
	seats      []seat.Seat
	fetchErr   error
	fetchCalls int
}

func (f *fakeSeatRepo) FetchAll(ctx context.Context) ([]seat.Seat, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]seat.Seat, len(f.seats))
	copy(out, f.seats)
	return out, nil
}

func (f *fakeSeatRepo) FetchByNo(ctx context.Context, seatNo string) (seat.Seat, bool, error) {
	for _, s := range f.seats {
		if s.SeatNo == seatNo {
			return s, true, nil
		}
	}
	return seat.Seat{}, false, nil
}

func (f *fakeSeatRepo) Upsert(ctx context.Context, s seat.Seat) error {
	for i := range f.seats {
		if f.seats[i].SeatNo == s.SeatNo {
			f.seats[i] = s
			return nil
		}
	}
	f.seats = append(f.seats, s)
	return nil
}

func (f *fakeSeatRepo) UpdateFields(ctx context.Context, seatNo string, fields map[string]any) error {
	return nil
}

func (f *fakeSeatRepo) BulkUpsert(ctx context.Context, seats []seat.Seat) error {
	for _, s := range seats {
		if err := f.Upsert(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeSeatRepo) BulkUpdateFields(ctx context.Context, seatNos []string, fields map[string]any) error {
	return nil
}

func TestCache_SnapshotFetchesOnce(t *testing.T) {
	repo := &fakeSeatRepo{seats: []seat.Seat{{SeatNo: "পঞ্চগড়-১"}}}
	cache := NewCache(repo)

	first, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)

	_, err = cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.fetchCalls)
}

func TestCache_SnapshotPropagatesFetchError(t *testing.T) {
	repo := &fakeSeatRepo{fetchErr: errors.New("connection reset")}
	cache := NewCache(repo)

	_, err := cache.Snapshot(context.Background())
	assert.Error(t, err)

	// A failed load leaves the cache cold, so the next read retries.
	repo.fetchErr = nil
	_, err = cache.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.fetchCalls)
}

func TestCache_PutPatchesWarmCache(t *testing.T) {
	repo := &fakeSeatRepo{seats: []seat.Seat{{SeatNo: "পঞ্চগড়-১"}}}
	cache := NewCache(repo)

	_, err := cache.Snapshot(context.Background())
	require.NoError(t, err)

	cache.Put(seat.Seat{SeatNo: "পঞ্চগড়-১", TotalVotes: 500})
	cache.Put(seat.Seat{SeatNo: "পঞ্চগড়-২"})

	snapshot, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot, 2)
	assert.Equal(t, 1, repo.fetchCalls)
}

func TestCache_PutOnColdCacheIsNoop(t *testing.T) {
	repo := &fakeSeatRepo{}
	cache := NewCache(repo)

	cache.Put(seat.Seat{SeatNo: "পঞ্চগড়-১", TotalVotes: 500})

	snapshot, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot)
	assert.Equal(t, 1, repo.fetchCalls)
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	repo := &fakeSeatRepo{seats: []seat.Seat{{SeatNo: "পঞ্চগড়-১"}}}
	cache := NewCache(repo)

	_, err := cache.Snapshot(context.Background())
	require.NoError(t, err)

	repo.seats = append(repo.seats, seat.Seat{SeatNo: "পঞ্চগড়-২"})
	cache.Invalidate()

	snapshot, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot, 2)
	assert.Equal(t, 2, repo.fetchCalls)
}
