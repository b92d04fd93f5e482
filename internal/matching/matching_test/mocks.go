package matching_test

import (
	"context"
	"sync"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
)

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, texts []string) ([][]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, text)
	}
	return []float32{1, 0}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, texts)
	}
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

// MockOracle implements matching.Oracle
type MockOracle struct {
	OnAnalyzeResume func(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error)
	OnMatchJobs     func(ctx context.Context, resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) ([]resumeModel.OracleMatch, error)
	AnalyzeCalls    int
}

func (m *MockOracle) AnalyzeResume(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error) {
	m.AnalyzeCalls++
	if m.OnAnalyzeResume != nil {
		return m.OnAnalyzeResume(ctx, resumeText, filename)
	}
	return resumeModel.Analysis{
		Skills:         []string{},
		ExperienceList: []string{},
		Education:      []string{},
		Certifications: []string{},
	}, nil
}

func (m *MockOracle) MatchJobs(ctx context.Context, resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) ([]resumeModel.OracleMatch, error) {
	if m.OnMatchJobs != nil {
		return m.OnMatchJobs(ctx, resumeText, resumeSkills, jobs, maxMatches)
	}
	return []resumeModel.OracleMatch{}, nil
}

// MockAnalysisStore is a map-backed store.AnalysisStore
type MockAnalysisStore struct {
	mu   sync.Mutex
	data map[string]resumeModel.Analysis
}

func NewMockAnalysisStore() *MockAnalysisStore {
	return &MockAnalysisStore{data: make(map[string]resumeModel.Analysis)}
}

func (m *MockAnalysisStore) GetAnalysis(ctx context.Context, key string) (resumeModel.Analysis, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	analysis, found := m.data[key]
	return analysis, found
}

func (m *MockAnalysisStore) SaveAnalysis(ctx context.Context, key string, analysis resumeModel.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = analysis
	return nil
}

func (m *MockAnalysisStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// MockSemanticCache implements vectorDB.AnalysisCache
type MockSemanticCache struct {
	OnGetCachedAnalysis func(ctx context.Context, queryVector []float32) (string, bool, error)
	OnSaveAnalysis      func(ctx context.Context, id string, vector []float32, analysisJSON string) error
}

func (m *MockSemanticCache) GetCachedAnalysis(ctx context.Context, queryVector []float32) (string, bool, error) {
	if m.OnGetCachedAnalysis != nil {
		return m.OnGetCachedAnalysis(ctx, queryVector)
	}
	return "", false, nil
}

func (m *MockSemanticCache) SaveAnalysis(ctx context.Context, id string, vector []float32, analysisJSON string) error {
	if m.OnSaveAnalysis != nil {
		return m.OnSaveAnalysis(ctx, id, vector, analysisJSON)
	}
	return nil
}
