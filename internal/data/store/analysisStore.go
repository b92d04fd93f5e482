package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

// AnalysisStore is the exact-match tier of the analysis cache, keyed by
// a hash of the resume text. It is a TTL cache of oracle output, not
// persistence: entries expire and nothing survives a restart.
type AnalysisStore interface {
	GetAnalysis(ctx context.Context, key string) (resumeModel.Analysis, bool)
	SaveAnalysis(ctx context.Context, key string, analysis resumeModel.Analysis) error
}

// CacheKey derives the exact-match cache key from resume text.
func CacheKey(resumeText string) string {
	sum := sha256.Sum256([]byte(resumeText))
	return "analysis:" + hex.EncodeToString(sum[:])
}

type inMemoryEntry struct {
	analysis resumeModel.Analysis
	expires  time.Time
}

type InMemoryAnalysisStore struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	ttl     time.Duration
	logger  *logger_i.Logger
}

// InitInMemoryAnalysisStore is the fallback when Redis is offline.
func InitInMemoryAnalysisStore(ttl time.Duration) *InMemoryAnalysisStore {
	return &InMemoryAnalysisStore{
		entries: make(map[string]inMemoryEntry),
		ttl:     ttl,
		logger:  logger_i.NewLogger("InMem AnalysisStore"),
	}
}

func (s *InMemoryAnalysisStore) GetAnalysis(ctx context.Context, key string) (resumeModel.Analysis, bool) {
	s.mu.RLock()
	entry, found := s.entries[key]
	s.mu.RUnlock()

	if !found {
		return resumeModel.Analysis{}, false
	}
	if time.Now().After(entry.expires) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return resumeModel.Analysis{}, false
	}
	return entry.analysis, true
}

func (s *InMemoryAnalysisStore) SaveAnalysis(ctx context.Context, key string, analysis resumeModel.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = inMemoryEntry{analysis: analysis, expires: time.Now().Add(s.ttl)}
	s.logger.Debug("Saved analysis to store", "key", key)
	return nil
}
