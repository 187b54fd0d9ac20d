package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

const (
	identityCollection = "identities"

	usernameIndex = "username_1"
	emailIndex    = "email_1"
)

// MongoIdentityRepository persists identity records. The collection carries
// unique indexes on username and email (see EnsureIndexes), so an insert that
// lost a race against a concurrent registration fails at commit time and is
// mapped back onto the matching duplicate error.
type MongoIdentityRepository struct {
	coll *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *MongoIdentityRepository {
	return &MongoIdentityRepository{coll: db.Collection(identityCollection)}
}

type mongoIdentity struct {
	ID           string   `bson:"_id"`
	Username     string   `bson:"username"`
	Email        string   `bson:"email"`
	DisplayName  string   `bson:"display_name,omitempty"`
	PasswordHash string   `bson:"password_hash"`
	Roles        []string `bson:"roles"`
	CreatedAt    int64    `bson:"created_at"`
	UpdatedAt    int64    `bson:"updated_at"`
}

func toMongoIdentity(identity *domain.Identity) mongoIdentity {
	return mongoIdentity{
		ID:           identity.ID,
		Username:     identity.Username,
		Email:        identity.Email,
		DisplayName:  identity.DisplayName,
		PasswordHash: identity.PasswordHash,
		Roles:        identity.Roles,
		CreatedAt:    identity.CreatedAt.Unix(),
		UpdatedAt:    identity.UpdatedAt.Unix(),
	}
}

func (m mongoIdentity) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		DisplayName:  m.DisplayName,
		PasswordHash: m.PasswordHash,
		Roles:        m.Roles,
		CreatedAt:    unixToTime(m.CreatedAt),
		UpdatedAt:    unixToTime(m.UpdatedAt),
	}
}

// Create inserts the identity with its embedded role set in a single write,
// so identity creation and role assignment commit together or not at all.
func (r *MongoIdentityRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoIdentity(identity)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("insert identity: %w", err)
	}
	return identity, nil
}

func (r *MongoIdentityRepository) FindByUsername(ctx context.Context, username string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoIdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoIdentityRepository) findOne(ctx context.Context, filter bson.M) (*domain.Identity, error) {
	var mi mongoIdentity
	if err := r.coll.FindOne(ctx, filter).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return mi.toDomain(), nil
}

// duplicateKeyError resolves which unique index rejected the write. The
// driver surfaces the violated index name inside the write error message.
func duplicateKeyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, usernameIndex):
		return domain.ErrDuplicateUsername
	case strings.Contains(msg, emailIndex):
		return domain.ErrDuplicateEmail
	default:
		return domain.ErrDuplicateUsername
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
