package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/li-cell/election-backend-go/internal/domain/role"
	"github.com/li-cell/election-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type roleRepositoryImpl struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{coll: db.Collection("roles")}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, entity role.Role) (role.Role, error) {
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}
	entity.CreatedAt = time.Now().UTC()
	if entity.Permissions == nil {
		entity.Permissions = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}
	return entity, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	var entity role.Role
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return role.Role{}, role.ErrRoleNotFound
	}
	if err != nil {
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}
	return entity, nil
}

// List implements role.RoleRepository, newest first.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []role.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("failed to decode roles: %w", err)
	}
	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, id string, fields map[string]any) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if result.MatchedCount == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if result.DeletedCount == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}
