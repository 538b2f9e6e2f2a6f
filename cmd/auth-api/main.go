package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-service/internal/api"
	"github.com/99minutos/auth-service/internal/core/service"
	"github.com/99minutos/auth-service/internal/infrastructure/identity"
	"github.com/99minutos/auth-service/internal/pkg/config"
	"github.com/99minutos/auth-service/pkg/logger"
)

const serviceName = "auth-api"

func main() {
	if err := run(); err != nil {
		// The logger may not exist yet when config loading fails.
		fallback := zerolog.New(os.Stderr).With().Timestamp().Str("service", serviceName).Logger()
		fallback.Fatal().Err(err).Msg("auth-api stopped")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && !cfg.IsProduction(),
		Service: serviceName,
	})

	issuer, err := service.NewJWTIssuer(service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})
	if err != nil {
		return err
	}

	promotion, err := cfg.Promotion()
	if err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, logger.Component("storage"))
	if err != nil {
		return err
	}
	defer st.close(logger.Component("storage"))

	policy := identity.PasswordPolicy{
		RequiredLength:         cfg.Password.MinLength,
		RequiredUniqueChars:    cfg.Password.RequiredUniqueChars,
		RequireDigit:           cfg.Password.RequireDigit,
		RequireLowercase:       cfg.Password.RequireLower,
		RequireUppercase:       cfg.Password.RequireUpper,
		RequireNonAlphanumeric: cfg.Password.RequireNonAlnum,
	}
	users := identity.NewUserManager(st.users, identity.NewBcryptHasher(cfg.Password.BcryptCost), policy)
	roles := identity.NewRoleManager(st.roles)
	authService := service.NewAuthService(users, roles, issuer, logger.Component("auth"))

	if err := bootstrap(ctx, authService, cfg.Bootstrap, logger.Component("bootstrap")); err != nil {
		return err
	}

	e := api.NewRouter(api.Options{
		AuthService:    authService,
		Verifier:       issuer,
		PromotionRoles: promotion,
		Pingers:        st.pingers,
		Logger:         logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Str("role_store", cfg.RoleDriver()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
