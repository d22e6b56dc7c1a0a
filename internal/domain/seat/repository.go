package seat

import "context"

// SeatRepository is the seats-collection contract: fetch-all and fetch-one
// reads, merge-set upserts, field patches, and batch field patches for the
// bulk initialize/delete-all operations.
type SeatRepository interface {
	FetchAll(ctx context.Context) ([]Seat, error)
	FetchByNo(ctx context.Context, seatNo string) (Seat, bool, error)
	Upsert(ctx context.Context, s Seat) error
	UpdateFields(ctx context.Context, seatNo string, fields map[string]any) error
	BulkUpsert(ctx context.Context, seats []Seat) error
	BulkUpdateFields(ctx context.Context, seatNos []string, fields map[string]any) error
}
