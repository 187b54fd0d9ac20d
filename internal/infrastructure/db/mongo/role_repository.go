package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

const roleCollection = "roles"

// MongoRoleRepository holds the known role definitions. Role creation and
// management is an administrative concern; the application only bootstraps
// the built-in set at startup and reads definitions by name.
type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(roleCollection)}
}

type mongoRole struct {
	Name        string `bson:"_id"`
	Description string `bson:"description,omitempty"`
}

// EnsureRoles upserts the given role definitions; safe to call on every start.
func (r *MongoRoleRepository) EnsureRoles(ctx context.Context, roles []domain.Role) error {
	for _, role := range roles {
		filter := bson.M{"_id": role.Name}
		update := bson.M{"$set": mongoRole{Name: role.Name, Description: role.Description}}
		if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("ensure role %s: %w", role.Name, err)
		}
	}
	return nil
}

func (r *MongoRoleRepository) FindRole(ctx context.Context, name string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUnknownRole
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{Name: mr.Name, Description: mr.Description}, nil
}
