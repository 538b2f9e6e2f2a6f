package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
	"github.com/99minutos/auth-service/internal/pkg/config"
)

// bootstrap seeds roles and creates the first admin so promotion endpoints
// have someone allowed to call them. Both steps are safe to repeat.
func bootstrap(ctx context.Context, svc ports.AuthService, cfg config.BootstrapConfig, log zerolog.Logger) error {
	if cfg.SeedRoles {
		res, err := svc.SeedRoles(ctx)
		if err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		log.Info().Bool("created", res.Created).Msg(res.Message)
	}

	if cfg.AdminUsername == "" {
		return nil
	}

	_, err := svc.Register(ctx, ports.RegisterInput{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Email:    cfg.AdminEmail,
	})
	switch {
	case err == nil:
		log.Info().Str("username", cfg.AdminUsername).Msg("bootstrap admin created")
	case errors.Is(err, domain.ErrDuplicateUsername):
		log.Debug().Str("username", cfg.AdminUsername).Msg("bootstrap admin already exists")
	default:
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	if _, err := svc.MakeAdmin(ctx, cfg.AdminUsername); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	return nil
}
