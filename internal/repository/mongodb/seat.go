package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seatRepositoryImpl struct {
	coll *mongo.Collection
}

func NewSeatRepository(db *database.DB) seat.SeatRepository {
	return &seatRepositoryImpl{coll: db.Collection("seats")}
}

// FetchAll implements seat.SeatRepository.
func (r *seatRepositoryImpl) FetchAll(ctx context.Context) ([]seat.Seat, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seats: %w", err)
	}
	defer cursor.Close(ctx)

	var seats []seat.Seat
	if err := cursor.All(ctx, &seats); err != nil {
		return nil, fmt.Errorf("failed to decode seats: %w", err)
	}
	return seats, nil
}

// FetchByNo implements seat.SeatRepository.
func (r *seatRepositoryImpl) FetchByNo(ctx context.Context, seatNo string) (seat.Seat, bool, error) {
	var s seat.Seat
	err := r.coll.FindOne(ctx, bson.M{"_id": seatNo}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return seat.Seat{}, false, nil
	}
	if err != nil {
		return seat.Seat{}, false, fmt.Errorf("failed to fetch seat %s: %w", seatNo, err)
	}
	return s, true, nil
}

// Upsert implements seat.SeatRepository with merge-set semantics: named
// fields are written, unspecified document fields survive.
func (r *seatRepositoryImpl) Upsert(ctx context.Context, s seat.Seat) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": s.SeatNo},
		bson.M{"$set": seatSetFields(s)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert seat %s: %w", s.SeatNo, err)
	}
	return nil
}

// UpdateFields implements seat.SeatRepository.
func (r *seatRepositoryImpl) UpdateFields(ctx context.Context, seatNo string, fields map[string]any) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": seatNo}, bson.M{"$set": fields}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update seat %s: %w", seatNo, err)
	}
	return nil
}

// BulkUpsert implements seat.SeatRepository.
func (r *seatRepositoryImpl) BulkUpsert(ctx context.Context, seats []seat.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(seats))
	for _, s := range seats {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": s.SeatNo}).
			SetUpdate(bson.M{"$set": seatSetFields(s)}).
			SetUpsert(true))
	}
	if _, err := r.coll.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("failed to bulk upsert seats: %w", err)
	}
	return nil
}

// BulkUpdateFields implements seat.SeatRepository. A nil seatNos patches every
// document in the collection.
func (r *seatRepositoryImpl) BulkUpdateFields(ctx context.Context, seatNos []string, fields map[string]any) error {
	filter := bson.M{}
	if seatNos != nil {
		filter = bson.M{"_id": bson.M{"$in": seatNos}}
	}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("failed to bulk update seats: %w", err)
	}
	return nil
}

// seatSetFields builds the $set document for a seat, leaving _id out of the
// update so upserts never touch the immutable key.
func seatSetFields(s seat.Seat) bson.M {
	fields := bson.M{
		"division":    s.Division,
		"district":    s.District,
		"results":     s.Results,
		"totalVotes":  s.TotalVotes,
		"isSuspended": s.IsSuspended,
		"updatedAt":   s.UpdatedAt,
	}
	if s.TotalVoters > 0 {
		fields["totalVoters"] = s.TotalVoters
	}
	if s.TotalCenters > 0 {
		fields["totalCenters"] = s.TotalCenters
	}
	if len(s.Upazilas) > 0 {
		fields["upazilas"] = s.Upazilas
	}
	return fields
}
