package matching

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/adapter/utils"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/data/store"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/embedding"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/similarity"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/vectorDB"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/metrics"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/pipeline/ats"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/pipeline/parse"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/worker"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

// Oracle is the two-method seam in front of the LLM so tests can substitute
// deterministic stubs for the fallback paths.
type Oracle interface {
	AnalyzeResume(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error)
	MatchJobs(ctx context.Context, resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) ([]resumeModel.OracleMatch, error)
}

// Service is the pipeline orchestrator behind all endpoints. Handlers only
// see this contract; the embedder, oracle and caches stay internal.
type Service interface {
	ParseResume(ctx context.Context, data []byte, filename string) (resumeModel.ParsedResume, error)
	AnalyzeText(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error)
	MatchByEmbedding(ctx context.Context, resumeText string, jobs []resumeModel.JobPosting) ([]resumeModel.JobMatch, error)
	MatchByOracle(ctx context.Context, resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) ([]resumeModel.OracleMatch, error)
}

type service struct {
	embedder embedding.Embedder
	oracle   Oracle
	parser   *parse.Parser
	analyses store.AnalysisStore
	semCache vectorDB.AnalysisCache // nil disables the semantic tier
	pool     *worker.Pool           // nil runs offloaded work inline
	logger   *logger_i.Logger
}

// NewService constructor. Every dependency is injected at startup and shared
// read-only between requests; only semCache and pool are optional.
func NewService(em embedding.Embedder, oracle Oracle, parser *parse.Parser, analyses store.AnalysisStore, semCache vectorDB.AnalysisCache, pool *worker.Pool) Service {
	return &service{
		embedder: em,
		oracle:   oracle,
		parser:   parser,
		analyses: analyses,
		semCache: semCache,
		pool:     pool,
		logger:   logger_i.NewLogger("Matching Service"),
	}
}

// ParseResume runs the full pipeline: extract, oracle analysis merged with
// the heuristic record, ATS score. Degraded text never fails the request;
// only an oracle transport error does.
func (s *service) ParseResume(ctx context.Context, data []byte, filename string) (resumeModel.ParsedResume, error) {
	start := time.Now()
	defer func() { metrics.CapturePipelineMetrics("parse_resume", time.Since(start)) }()

	processCtx, cancel := context.WithTimeout(ctx, config.PipelineTimeout)
	defer cancel()

	text := s.executeExtractStep(processCtx, data, filename)
	record := s.executeParseStep(text)

	analysis, err := s.AnalyzeText(processCtx, text, filename)
	if err != nil {
		return resumeModel.ParsedResume{}, err
	}

	merged := mergeAnalysis(analysis, record)
	confidence := 0.9
	if analysis.Degraded {
		confidence = record.Confidence
	}

	atsStart := time.Now()
	score := ats.Score(text, ats.Input{
		Email:      merged.Email,
		Phone:      merged.Phone,
		Skills:     merged.Skills,
		Experience: experienceList(merged),
		Education:  merged.Education,
	})
	metrics.CaptureStageMetrics("ats", time.Since(atsStart))

	return resumeModel.ParsedResume{
		Analysis:   merged,
		Record:     record,
		ParsedText: text,
		Confidence: confidence,
		AtsScore:   score,
	}, nil
}

// AnalyzeText resolves an analysis through the two cache tiers before asking
// the oracle: exact (hashed text) first, then semantic (embedding within the
// similarity cutoff). Cache trouble is absorbed; oracle transport errors are
// not.
func (s *service) AnalyzeText(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error) {
	key := store.CacheKey(resumeText)

	if analysis, found := s.executeCacheCheckStep(ctx, key); found {
		return analysis, nil
	}

	vector := s.resumeVector(ctx, resumeText)
	if analysis, found := s.executeSemanticCheckStep(ctx, vector); found {
		_ = s.analyses.SaveAnalysis(ctx, key, analysis)
		return analysis, nil
	}

	analysis, err := s.executeOracleAnalysisStep(ctx, resumeText, filename)
	if err != nil {
		return resumeModel.Analysis{}, err
	}

	if !analysis.Degraded {
		if err := s.analyses.SaveAnalysis(ctx, key, analysis); err != nil {
			s.logger.Error("Failed to save analysis to cache", "error", err)
		}
		s.saveSemanticInBackground(vector, analysis)
	}
	return analysis, nil
}

// MatchByEmbedding encodes the resume and every job in one batch call and
// ranks by cosine similarity, 0-1 scale, stable descending order.
func (s *service) MatchByEmbedding(ctx context.Context, resumeText string, jobs []resumeModel.JobPosting) ([]resumeModel.JobMatch, error) {
	start := time.Now()
	defer func() { metrics.CapturePipelineMetrics("match_embedding", time.Since(start)) }()

	jobTexts := make([]string, len(jobs))
	for i, job := range jobs {
		jobTexts[i] = job.Description + "\n" + job.Requirements
	}

	vectors, err := s.executeEmbeddingStep(ctx, append([]string{resumeText}, jobTexts...))
	if err != nil {
		return nil, err
	}

	ranked := similarity.Rank(vectors[0], vectors[1:])

	matches := make([]resumeModel.JobMatch, 0, len(ranked))
	for _, r := range ranked {
		job := jobs[r.Index]
		matches = append(matches, resumeModel.JobMatch{
			JobID:         job.ID,
			Title:         job.Title,
			Company:       job.Company,
			Similarity:    r.Score,
			Percentage:    toPercentage(r.Score),
			MatchedSkills: similarity.MatchedSkills(resumeText, jobTexts[r.Index]),
		})
	}
	return matches, nil
}

// MatchByOracle delegates to the oracle adapter; the 0-100 scale and the
// fallback-on-parse-failure behavior live there.
func (s *service) MatchByOracle(ctx context.Context, resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) ([]resumeModel.OracleMatch, error) {
	start := time.Now()
	defer func() { metrics.CapturePipelineMetrics("match_oracle", time.Since(start)) }()

	processCtx, cancel := context.WithTimeout(ctx, config.PipelineTimeout)
	defer cancel()

	oracleStart := time.Now()
	matches, err := s.oracle.MatchJobs(processCtx, resumeText, resumeSkills, jobs, maxMatches)
	metrics.CaptureStageMetrics("oracle", time.Since(oracleStart))
	return matches, err
}

// saveSemanticInBackground mirrors the cache-fill pattern: the request is not
// held up by the vector store write.
func (s *service) saveSemanticInBackground(vector []float32, analysis resumeModel.Analysis) {
	if s.semCache == nil || vector == nil {
		return
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.semCache.SaveAnalysis(saveCtx, utils.GetNewUUID(), vector, string(data)); err != nil {
			s.logger.Error("Failed to save analysis to semantic cache")
		}
	}()
}
