package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

const rolesCollection = "roles"

// RoleRepository stores role definitions in their own collection and
// assignments as a set-valued field on the user document.
type RoleRepository struct {
	roles *mongo.Collection
	users *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{
		roles: db.Collection(rolesCollection),
		users: db.Collection(usersCollection),
	}
}

type mongoRole struct {
	Name      string `bson:"_id"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *RoleRepository) Exists(ctx context.Context, role domain.Role) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.roles.CountDocuments(ctx, bson.M{"_id": string(role)}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count role: %w", err)
	}
	return n > 0, nil
}

func (r *RoleRepository) Create(ctx context.Context, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.roles.InsertOne(ctx, mongoRole{Name: string(role), CreatedAt: time.Now().UTC().Unix()})
	if err != nil {
		return insertError(err, domain.ErrRoleExists, "insert role")
	}
	return nil
}

func (r *RoleRepository) ListForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc struct {
		Roles []string `bson:"roles"`
	}
	opts := options.FindOne().SetProjection(bson.M{"roles": 1})
	// Callers resolve the user first, so a missing document here is a storage fault.
	if err := r.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&doc); err != nil {
		return nil, findError(err, nil, "find roles of user "+userID)
	}

	roles := make([]domain.Role, 0, len(doc.Roles))
	for _, name := range doc.Roles {
		roles = append(roles, domain.Role(name))
	}
	return roles, nil
}

// Assign uses $addToSet, so repeating a grant leaves the document unchanged.
func (r *RoleRepository) Assign(ctx context.Context, userID string, role domain.Role) error {
	exists, err := r.Exists(ctx, role)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, grantUpdate(role, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// grantUpdate adds role to the set-valued roles field and bumps updated_at.
func grantUpdate(role domain.Role, now time.Time) bson.M {
	return bson.M{
		"$addToSet": bson.M{"roles": string(role)},
		"$set":      bson.M{"updated_at": now.Unix()},
	}
}

var _ ports.RoleRepository = (*RoleRepository)(nil)
