package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// mongoUser also carries the user's role assignments; RoleRepository owns that field.
type mongoUser struct {
	ID                 string   `bson:"_id"`
	Username           string   `bson:"username"`
	NormalizedUsername string   `bson:"normalized_username"`
	Email              string   `bson:"email,omitempty"`
	FirstName          string   `bson:"first_name"`
	LastName           string   `bson:"last_name"`
	PasswordHash       string   `bson:"password_hash"`
	SecurityStamp      string   `bson:"security_stamp"`
	Roles              []string `bson:"roles"`
	CreatedAt          int64    `bson:"created_at"`
	UpdatedAt          int64    `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		ID:                 user.ID,
		Username:           user.Username,
		NormalizedUsername: domain.NormalizeUsername(user.Username),
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		PasswordHash:       user.PasswordHash,
		SecurityStamp:      user.SecurityStamp,
		Roles:              []string{},
		CreatedAt:          user.CreatedAt.Unix(),
		UpdatedAt:          user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return insertError(err, domain.ErrDuplicateUsername, "insert user")
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	filter := bson.M{"normalized_username": domain.NormalizeUsername(username)}
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		return nil, findError(err, domain.ErrUserNotFound, "find user")
	}

	return &domain.User{
		ID:            mu.ID,
		Username:      mu.Username,
		Email:         mu.Email,
		FirstName:     mu.FirstName,
		LastName:      mu.LastName,
		PasswordHash:  mu.PasswordHash,
		SecurityStamp: mu.SecurityStamp,
		CreatedAt:     unixToTime(mu.CreatedAt),
		UpdatedAt:     unixToTime(mu.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

var _ ports.UserRepository = (*UserRepository)(nil)
