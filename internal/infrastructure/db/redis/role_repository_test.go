package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func newTestRepo(t *testing.T) (*RoleRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRoleRepository(client, "test:"), mr
}

func TestRoleRepository_CreateAndExists(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, domain.RoleAdmin))
	assert.ErrorIs(t, repo.Create(ctx, domain.RoleAdmin), domain.ErrRoleExists)

	ok, err = repo.Exists(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := mr.Members("test:roles")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN"}, members)
}

func TestRoleRepository_AssignIsSetLike(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Assign(ctx, "u1", domain.RoleCustomer), domain.ErrRoleNotFound)

	for _, role := range domain.AllRoles() {
		require.NoError(t, repo.Create(ctx, role))
	}
	require.NoError(t, repo.Assign(ctx, "u1", domain.RoleCustomer))
	require.NoError(t, repo.Assign(ctx, "u1", domain.RoleCreator))
	require.NoError(t, repo.Assign(ctx, "u1", domain.RoleCreator))

	roles, err := repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Role{domain.RoleCustomer, domain.RoleCreator}, roles)
	assert.True(t, mr.Exists("test:user:u1:roles"))

	empty, err := repo.ListForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRoleRepository_DefaultPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRoleRepository(client, "")
	require.NoError(t, repo.Create(context.Background(), domain.RoleCustomer))
	assert.True(t, mr.Exists("auth:roles"))
}

func TestRoleRepository_BackendDown(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	_, err := repo.Exists(context.Background(), domain.RoleAdmin)
	assert.Error(t, err)
}

func TestPinger(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	p := NewPinger(client)
	assert.Equal(t, "redis", p.Name())
	assert.NoError(t, p.Ping(context.Background()))
}
