package oracle

import (
	"context"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

// Generator is the raw text-in/text-out oracle call. Implementations wrap one
// concrete LLM backend; the adapter treats the output as untrusted free text,
// never as a structured API.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Adapter formats prompts, invokes the generator, and defensively parses the
// response. Parse failures degrade to fallback values; generator transport
// errors propagate to the caller as hard failures.
type Adapter struct {
	generator Generator
	logger    *logger_i.Logger
}

func NewAdapter(generator Generator) *Adapter {
	return &Adapter{
		generator: generator,
		logger:    logger_i.NewLogger("Oracle Adapter"),
	}
}

// AnalyzeResume asks the oracle for a structured extraction of the resume and
// normalizes whatever comes back into the fixed Analysis field set.
func (a *Adapter) AnalyzeResume(ctx context.Context, resumeText string, filename string) (resumeModel.Analysis, error) {
	raw, err := a.generator.GenerateContent(ctx, buildAnalyzePrompt(resumeText))
	if err != nil {
		return resumeModel.Analysis{}, err
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		a.logger.Error("Error parsing analysis response", "filename", filename, "error", err)
		a.logger.Debug("Raw analysis response", "response", raw)
		return fallbackAnalysis(), nil
	}
	return analysis, nil
}

// MatchJobs asks the oracle to score every job against the resume. A
// non-JSON response synthesizes min(maxMatches, len(jobs)) neutral entries
// instead of failing the request.
func (a *Adapter) MatchJobs(ctx context.Context, resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) ([]resumeModel.OracleMatch, error) {
	raw, err := a.generator.GenerateContent(ctx, buildMatchPrompt(resumeText, resumeSkills, jobs, maxMatches))
	if err != nil {
		return nil, err
	}

	matches, err := parseMatches(raw)
	if err != nil {
		a.logger.Error("Error parsing job matching response", "error", err)
		a.logger.Debug("Raw matching response", "response", raw)
		return fallbackMatches(jobs, maxMatches), nil
	}
	return matches, nil
}
