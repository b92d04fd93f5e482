package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func TestExtractJSON_FencedEqualsUnfenced(t *testing.T) {
	plain := `{"skills": ["python"]}`
	fenced := "```json\n" + plain + "\n```"
	bareFence := "```\n" + plain + "\n```"

	if got := extractJSON(fenced); got != plain {
		t.Errorf("json fence not stripped: %q", got)
	}
	if got := extractJSON(bareFence); got != plain {
		t.Errorf("bare fence not stripped: %q", got)
	}
	if got := extractJSON("  " + plain + "\n"); got != plain {
		t.Errorf("whitespace not trimmed: %q", got)
	}
	if got := extractJSON(plain + "\n``` "); got != plain {
		t.Errorf("trailing-only fence not stripped: %q", got)
	}
	if got := extractJSON("```json\n" + plain); got != plain {
		t.Errorf("leading-only fence not stripped: %q", got)
	}
}

func TestParseAnalysis_TrailingFenceOnly(t *testing.T) {
	analysis, err := parseAnalysis("{\"skills\": [\"python\"]}\n``` ")
	if err != nil {
		t.Fatalf("trailing-fenced JSON must parse: %v", err)
	}
	if len(analysis.Skills) != 1 || analysis.Skills[0] != "python" {
		t.Errorf("skills got %v", analysis.Skills)
	}
}

func TestParseAnalysis_MissingKeysDefault(t *testing.T) {
	analysis, err := parseAnalysis(`{"skills": ["python"], "email": "a@b.co"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(analysis.Skills) != 1 || analysis.Skills[0] != "python" {
		t.Errorf("skills got %v", analysis.Skills)
	}
	if analysis.Email != "a@b.co" {
		t.Errorf("email got %q", analysis.Email)
	}
	if analysis.Name != nil || analysis.Title != nil {
		t.Error("absent name/title should stay nil")
	}
	if analysis.ExperienceList == nil || analysis.Education == nil || analysis.Certifications == nil {
		t.Error("absent list keys should default to empty slices, not nil")
	}
	if analysis.Degraded {
		t.Error("valid parse must not be degraded")
	}
}

func TestParseAnalysis_BlankNameStaysNil(t *testing.T) {
	analysis, err := parseAnalysis(`{"name": "  ", "title": "Engineer"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if analysis.Name != nil {
		t.Errorf("blank name should be nil, got %q", *analysis.Name)
	}
	if analysis.Title == nil || *analysis.Title != "Engineer" {
		t.Error("title lost")
	}
}

func TestAnalyzeResume_ParseFailureFallsBack(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{response: "I am sorry, I cannot help with that."})

	analysis, err := adapter.AnalyzeResume(context.Background(), "resume text", "resume.txt")
	if err != nil {
		t.Fatalf("parse failure must not surface an error, got %v", err)
	}
	if !analysis.Degraded {
		t.Error("fallback analysis must be marked degraded")
	}
	if analysis.Experience != "Unable to parse experience" {
		t.Errorf("experience got %q", analysis.Experience)
	}
	if analysis.Summary != "Unable to parse summary" {
		t.Errorf("summary got %q", analysis.Summary)
	}
}

func TestAnalyzeResume_TransportErrorSurfaces(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{err: errors.New("provider down")})

	_, err := adapter.AnalyzeResume(context.Background(), "resume text", "resume.txt")
	if err == nil {
		t.Fatal("transport error must propagate")
	}
}

func TestMatchJobs_FencedResponseParsed(t *testing.T) {
	response := "```json\n" + `[{"jobId": 7, "jobTitle": "Dev", "company": "Acme", "matchScore": 88.5, "explanation": "fit"}]` + "\n```"
	adapter := NewAdapter(&stubGenerator{response: response})

	matches, err := adapter.MatchJobs(context.Background(), "text", nil, []resumeModel.JobPosting{{ID: 7}}, 5)
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if len(matches) != 1 || matches[0].JobID != 7 || matches[0].MatchScore != 88.5 {
		t.Errorf("got %+v", matches)
	}
	if matches[0].MatchingSkills == nil || matches[0].MissingSkills == nil {
		t.Error("skill lists should be non-nil")
	}
}

func TestMatchJobs_ParseFailureSynthesizesNeutralMatches(t *testing.T) {
	adapter := NewAdapter(&stubGenerator{response: "not json at all"})
	jobs := []resumeModel.JobPosting{
		{ID: 3, Title: "Backend Dev", Company: "Acme"},
		{},
		{ID: 9, Title: "SRE", Company: "Globex"},
	}

	matches, err := adapter.MatchJobs(context.Background(), "text", nil, jobs, 2)
	if err != nil {
		t.Fatalf("parse failure must not surface an error, got %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected min(maxMatches, len(jobs)) entries, got %d", len(matches))
	}

	first := matches[0]
	if first.JobID != 3 || first.JobTitle != "Backend Dev" || first.MatchScore != 50.0 {
		t.Errorf("first fallback entry got %+v", first)
	}

	second := matches[1]
	if second.JobID != 2 || second.JobTitle != "Unknown Title" || second.Company != "Unknown Company" {
		t.Errorf("zero-valued job fallback got %+v", second)
	}
	if second.Explanation != "Unable to perform detailed analysis due to parsing error." {
		t.Errorf("explanation got %q", second.Explanation)
	}
}

func TestFallbackMatches_MaxBeyondJobs(t *testing.T) {
	jobs := []resumeModel.JobPosting{{ID: 1}}
	if got := fallbackMatches(jobs, 10); len(got) != 1 {
		t.Errorf("expected truncation to job count, got %d", len(got))
	}
}

func TestFallbackMatches_NegativeMaxIsEmpty(t *testing.T) {
	jobs := []resumeModel.JobPosting{{ID: 1}, {ID: 2}}
	if got := fallbackMatches(jobs, -3); len(got) != 0 {
		t.Errorf("negative max should yield no entries, got %d", len(got))
	}
}
