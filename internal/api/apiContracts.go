package api

import "github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"

// responses ------------------

type ResumeParseResponse struct {
	Name            *string  `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Title           *string  `json:"title"`
	Summary         *string  `json:"summary"`
	Skills          []string `json:"skills"`
	Experience      []string `json:"experience"`
	Education       []string `json:"education"`
	ParsedText      string   `json:"parsed_text"`
	ConfidenceScore float64  `json:"confidence_score"`
	AtsScore        int      `json:"ats_score"`
}

// JobMatch carries both scales on purpose: similarity_score is cosine based
// (0-1), match_percentage its integer projection (0-100). Consumers depend on
// both shapes.
type JobMatch struct {
	JobID           int      `json:"job_id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchPercentage int      `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
}

type MatchResponse struct {
	Matches          []JobMatch `json:"matches"`
	TotalJobs        int        `json:"total_jobs"`
	ProcessingTimeMs int        `json:"processing_time_ms"`
}

// MatchJobsResponse wraps oracle-native matches (matchScore on the 0-100 scale).
type MatchJobsResponse struct {
	Matches []resumeModel.OracleMatch `json:"matches"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Resume text is required"`
}

// requests ------------------

type AnalyzeTextRequest struct {
	ResumeText string `json:"resumeText"`
	FileName   string `json:"fileName,omitempty"`
}

type MatchRequest struct {
	ResumeText      string                   `json:"resume_text"`
	JobDescriptions []resumeModel.JobPosting `json:"job_descriptions"`
}

type MatchJobsRequest struct {
	ResumeText    string                   `json:"resumeText"`
	ResumeSkills  []string                 `json:"resumeSkills"`
	AvailableJobs []resumeModel.JobPosting `json:"availableJobs"`
	MaxMatches    int                      `json:"maxMatches"`
}
