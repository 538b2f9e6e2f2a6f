package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func TestUserRepository_ConcurrentCreateSameUsername(t *testing.T) {
	repo := NewUserRepository()

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(context.Background(), &domain.User{ID: "x", Username: "racer"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrDuplicateUsername):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 || dupes != attempts-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d/%d", attempts-1, succeeded, dupes)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	if err := repo.Create(context.Background(), &domain.User{ID: "1", Username: "amy", FirstName: "Amy"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u, err := repo.FindByUsername(context.Background(), "amy")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	u.FirstName = "changed"

	again, _ := repo.FindByUsername(context.Background(), "amy")
	if again.FirstName != "Amy" {
		t.Fatalf("stored user was mutated through a returned pointer")
	}
}

func TestRoleRepository_CreateAndAssign(t *testing.T) {
	repo := NewRoleRepository()
	ctx := context.Background()

	if err := repo.Assign(ctx, "u1", domain.RoleCreator); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if err := repo.Create(ctx, domain.RoleCreator); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, domain.RoleCreator); !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
	if err := repo.Assign(ctx, "u1", domain.RoleCreator); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := repo.Assign(ctx, "u1", domain.RoleCreator); err != nil {
		t.Fatalf("second Assign: %v", err)
	}

	roles, err := repo.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(roles) != 1 || roles[0] != domain.RoleCreator {
		t.Fatalf("expected [CREATOR], got %v", roles)
	}

	none, _ := repo.ListForUser(ctx, "u2")
	if len(none) != 0 {
		t.Fatalf("expected no roles for unknown user, got %v", none)
	}
}
