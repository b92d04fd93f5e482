package redisStore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

type Store struct {
	client *redis.Client
	logger *logger_i.Logger
}

// NewStore connects to Redis and verifies the connection with a short ping.
// Returns nil when Redis is offline; callers fall back to an in-memory store.
func NewStore(ctx context.Context, db int) *Store {
	logger := logger_i.NewLogger("Redis Store")

	client := redis.NewClient(&redis.Options{
		Addr:                  config.RedisAddress(),
		Password:              config.RedisPassword,
		DB:                    db,
		ContextTimeoutEnabled: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline:", "error", err)
		return nil
	}

	logger.Info("Redis store init successfully", "db", db)
	store := &Store{client: client, logger: logger}
	go store.closeOnDone(ctx)
	return store
}

// NewTestStore wraps an injected client, for tests backed by miniredis.
func NewTestStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		logger: logger_i.NewLogger("Redis Store"),
	}
}

func (s *Store) closeOnDone(ctx context.Context) {
	<-ctx.Done()
	s.logger.Info("Closing Redis store")
	if err := s.client.Close(); err != nil {
		s.logger.Error("Error closing redis client", "error", err)
	}
}
