package mongo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func duplicateKey() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
}

func TestInsertError(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name        string
		err         error
		onDuplicate error
		wantIs      error
		wantAuth    bool
	}{
		{"duplicate username", duplicateKey(), domain.ErrDuplicateUsername, domain.ErrDuplicateUsername, true},
		{"wrapped duplicate username", fmt.Errorf("insert: %w", duplicateKey()), domain.ErrDuplicateUsername, domain.ErrDuplicateUsername, true},
		{"duplicate role", duplicateKey(), domain.ErrRoleExists, domain.ErrRoleExists, false},
		{"other write error", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121}}}, domain.ErrDuplicateUsername, nil, false},
		{"driver failure", boom, domain.ErrDuplicateUsername, boom, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insertError(tt.err, tt.onDuplicate, "insert user")
			require.Error(t, got)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			_, isAuth := domain.AsAuthError(got)
			assert.Equal(t, tt.wantAuth, isAuth)
		})
	}
}

func TestFindError(t *testing.T) {
	got := findError(mongo.ErrNoDocuments, domain.ErrUserNotFound, "find user")
	assert.ErrorIs(t, got, domain.ErrUserNotFound)

	// A missing user document while listing roles is a storage fault, not a bad username.
	got = findError(mongo.ErrNoDocuments, nil, "find roles of user u-1")
	assert.ErrorIs(t, got, mongo.ErrNoDocuments)
	assert.Contains(t, got.Error(), "u-1")
	_, isAuth := domain.AsAuthError(got)
	assert.False(t, isAuth)

	boom := errors.New("timeout")
	got = findError(boom, domain.ErrUserNotFound, "find user")
	assert.ErrorIs(t, got, boom)
	assert.NotErrorIs(t, got, domain.ErrUserNotFound)
}

func TestGrantUpdate_AddsToSet(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	update := grantUpdate(domain.RoleCreator, now)

	assert.Equal(t, bson.M{"roles": "CREATOR"}, update["$addToSet"])
	assert.Equal(t, bson.M{"updated_at": now.Unix()}, update["$set"])
	assert.NotContains(t, update, "$push")
}
