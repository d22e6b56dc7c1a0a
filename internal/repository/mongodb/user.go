package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/li-cell/election-backend-go/internal/domain/user"
	"github.com/li-cell/election-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepositoryImpl struct {
	coll *mongo.Collection
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{coll: db.Collection("users")}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, entity user.AppUser) (user.AppUser, error) {
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}
	entity.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		return user.AppUser{}, fmt.Errorf("failed to create user: %w", err)
	}
	return entity, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.AppUser, error) {
	var entity user.AppUser
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.AppUser{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.AppUser{}, fmt.Errorf("failed to get user: %w", err)
	}
	return entity, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.AppUser, error) {
	var entity user.AppUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.AppUser{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.AppUser{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return entity, nil
}

// List implements user.UserRepository, newest first.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.AppUser, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []user.AppUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, fields map[string]any) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
