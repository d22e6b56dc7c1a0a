package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/li-cell/election-backend-go/internal/domain/party"
	"github.com/li-cell/election-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type partyRepositoryImpl struct {
	coll *mongo.Collection
}

func NewPartyRepository(db *database.DB) party.PartyRepository {
	return &partyRepositoryImpl{coll: db.Collection("metadata")}
}

type customPartiesDoc struct {
	ID    string   `bson:"_id"`
	Names []string `bson:"names"`
}

// Names implements party.PartyRepository. A missing document means no custom
// party has been registered yet.
func (r *partyRepositoryImpl) Names(ctx context.Context) ([]string, error) {
	var doc customPartiesDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": party.CustomPartyDoc}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom parties: %w", err)
	}
	return doc.Names, nil
}

// Add implements party.PartyRepository with set-union semantics.
func (r *partyRepositoryImpl) Add(ctx context.Context, name string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": party.CustomPartyDoc},
		bson.M{"$addToSet": bson.M{"names": name}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to register custom party: %w", err)
	}
	return nil
}
