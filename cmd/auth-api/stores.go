package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-service/internal/api/handler"
	"github.com/99minutos/auth-service/internal/core/ports"
	"github.com/99minutos/auth-service/internal/infrastructure/db/memory"
	"github.com/99minutos/auth-service/internal/infrastructure/db/mongo"
	"github.com/99minutos/auth-service/internal/infrastructure/db/postgres"
	"github.com/99minutos/auth-service/internal/infrastructure/db/redis"
	"github.com/99minutos/auth-service/internal/pkg/config"
)

const closeTimeout = 5 * time.Second

// stores bundles the repositories picked by STORE_DRIVER and ROLE_STORE_DRIVER
// with the readiness pingers and close hooks of the backends they opened.
type stores struct {
	users   ports.UserRepository
	roles   ports.RoleRepository
	pingers []handler.Pinger
	closers []func(context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	st := &stores{}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		st.users = memory.NewUserRepository()
		st.roles = memory.NewRoleRepository()
		log.Warn().Msg("using in-memory store; accounts are lost on restart")

	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, client.Disconnect)
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			st.close(log)
			return nil, err
		}
		st.users = mongo.NewUserRepository(db)
		st.roles = mongo.NewRoleRepository(db)
		st.pingers = append(st.pingers, mongo.NewPinger(db))
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			st.close(log)
			return nil, err
		}
		st.users = postgres.NewUserRepository(pool)
		st.roles = postgres.NewRoleRepository(pool)
		st.pingers = append(st.pingers, postgres.NewPinger(pool))
		log.Info().Msg("connected to postgres")

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.RoleDriver() == config.DriverRedis {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			st.close(log)
			return nil, err
		}
		st.closers = append(st.closers, func(context.Context) error { return rdb.Close() })
		st.roles = redis.NewRoleRepository(rdb, cfg.Redis.KeyPrefix)
		st.pingers = append(st.pingers, redis.NewPinger(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("roles stored in redis")
	}

	return st, nil
}

// close runs the close hooks in reverse order.
func (s *stores) close(log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			log.Error().Err(err).Msg("close backend")
		}
	}
	s.closers = nil
}
