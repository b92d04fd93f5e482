package store

import (
	"context"
	"encoding/json"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/data/redisStore"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

type RedisAnalysisStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisAnalysisStore returns the Redis-backed exact cache, or nil when
// Redis is offline.
func GetRedisAnalysisStore(ctx context.Context) *RedisAnalysisStore {
	inner := redisStore.NewStore(ctx, config.RedisAnalysisStore)
	if inner == nil {
		return nil
	}
	return &RedisAnalysisStore{
		store:  inner,
		logger: logger_i.NewLogger("AnalysisStore"),
	}
}

// NewRedisAnalysisStore wraps an existing store, for tests.
func NewRedisAnalysisStore(inner *redisStore.Store) *RedisAnalysisStore {
	return &RedisAnalysisStore{
		store:  inner,
		logger: logger_i.NewLogger("AnalysisStore"),
	}
}

func (s *RedisAnalysisStore) GetAnalysis(ctx context.Context, key string) (resumeModel.Analysis, bool) {
	var analysis resumeModel.Analysis

	val, err := s.store.Get(ctx, key)
	if s.store.IsNil(err) {
		return analysis, false
	} else if err != nil {
		s.logger.Error("analysis lookup failed", "error", err)
		return analysis, false
	}

	if err := json.Unmarshal([]byte(val), &analysis); err != nil {
		s.logger.Error("corrupt analysis entry", "key", key, "error", err)
		return analysis, false
	}
	return analysis, true
}

func (s *RedisAnalysisStore) SaveAnalysis(ctx context.Context, key string, analysis resumeModel.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, key, data, config.AnalysisCacheTTL)
	if err == nil {
		s.logger.Debug("Saved analysis to Redis", "key", key)
	}
	return err
}
