package matching

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/metrics"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/pipeline/extract"
)

func (s *service) executeExtractStep(ctx context.Context, data []byte, filename string) string {
	start := time.Now()
	defer func() { metrics.CaptureStageMetrics("extract", time.Since(start)) }()

	result, err := s.offload(ctx, func(context.Context) (any, error) {
		return extract.Text(data, filename), nil
	})
	if err != nil {
		s.logger.Warn("Text extraction did not complete", "file", filename, "error", err)
		return ""
	}
	return result.(string)
}

func (s *service) executeParseStep(text string) resumeModel.ResumeRecord {
	start := time.Now()
	defer func() { metrics.CaptureStageMetrics("parse", time.Since(start)) }()
	return s.parser.Parse(text)
}

func (s *service) executeCacheCheckStep(ctx context.Context, key string) (resumeModel.Analysis, bool) {
	start := time.Now()
	defer func() { metrics.CaptureStageMetrics("cache_exact", time.Since(start)) }()

	analysis, found := s.analyses.GetAnalysis(ctx, key)
	if found {
		s.logger.Info("Exact cache hit for analysis")
	}
	return analysis, found
}

func (s *service) executeSemanticCheckStep(ctx context.Context, vector []float32) (resumeModel.Analysis, bool) {
	if s.semCache == nil || vector == nil {
		return resumeModel.Analysis{}, false
	}

	start := time.Now()
	defer func() { metrics.CaptureStageMetrics("cache_semantic", time.Since(start)) }()

	payload, found, err := s.semCache.GetCachedAnalysis(ctx, vector)
	if err != nil {
		s.logger.Error("Semantic cache lookup failed", "error", err)
		return resumeModel.Analysis{}, false
	}
	if !found {
		return resumeModel.Analysis{}, false
	}

	var analysis resumeModel.Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		s.logger.Error("Semantic cache returned unreadable payload", "error", err)
		return resumeModel.Analysis{}, false
	}
	s.logger.Info("Semantic cache hit for analysis")
	return analysis, true
}

func (s *service) executeOracleAnalysisStep(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error) {
	start := time.Now()
	defer func() { metrics.CaptureStageMetrics("oracle", time.Since(start)) }()
	return s.oracle.AnalyzeResume(ctx, resumeText, filename)
}

func (s *service) executeEmbeddingStep(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureStageMetrics("embedding", time.Since(start)) }()

	result, err := s.offload(ctx, func(offloadCtx context.Context) (any, error) {
		return s.embedder.BatchEmbedding(offloadCtx, texts)
	})
	if err != nil {
		return nil, err
	}
	return result.([][]float32), nil
}

// resumeVector encodes the resume for the semantic cache. A failed embedding
// only disables that tier for the request.
func (s *service) resumeVector(ctx context.Context, resumeText string) []float32 {
	if s.semCache == nil {
		return nil
	}
	vector, err := s.embedder.GetEmbedding(ctx, resumeText)
	if err != nil {
		s.logger.Warn("Could not embed resume for semantic cache", "error", err)
		return nil
	}
	return vector
}

// offload runs fn on the worker pool when one is wired, inline otherwise.
func (s *service) offload(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	if s.pool == nil {
		return fn(ctx)
	}
	return s.pool.Submit(ctx, fn)
}

// mergeAnalysis combines the oracle analysis with the heuristic record: the
// oracle wins per field, the record fills blanks. Skills are the union with
// first-seen order kept.
func mergeAnalysis(analysis resumeModel.Analysis, record resumeModel.ResumeRecord) resumeModel.Analysis {
	merged := analysis

	if merged.Email == "" {
		merged.Email = record.Email
	}
	if merged.Phone == "" {
		merged.Phone = record.Phone
	}
	if merged.Name == nil && record.Name != "" {
		name := record.Name
		merged.Name = &name
	}
	if merged.Experience == "" && len(record.Experience) > 0 {
		merged.Experience = record.Experience[0]
	}
	if len(merged.ExperienceList) == 0 {
		merged.ExperienceList = record.Experience
	}
	if len(merged.Education) == 0 {
		merged.Education = record.Education
	}
	merged.Skills = unionSkills(analysis.Skills, record.Skills)
	return merged
}

func unionSkills(primary, secondary []string) []string {
	seen := make(map[string]bool, len(primary)+len(secondary))
	out := make([]string, 0, len(primary)+len(secondary))
	for _, skill := range append(append([]string{}, primary...), secondary...) {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		out = append(out, skill)
	}
	return out
}

// experienceList flattens the analysis experience fields for the scorer.
func experienceList(analysis resumeModel.Analysis) []string {
	if len(analysis.ExperienceList) > 0 {
		return analysis.ExperienceList
	}
	if analysis.Experience != "" {
		return []string{analysis.Experience}
	}
	return nil
}

func toPercentage(score float64) int {
	pct := int(score * 100)
	return max(0, min(100, pct))
}
