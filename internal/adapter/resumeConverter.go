package adapter

import (
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/api"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
)

func ToResumeParseResponse(parsed resumeModel.ParsedResume) api.ResumeParseResponse {
	analysis := parsed.Analysis

	var summaryPtr *string
	if analysis.Summary != "" {
		summaryPtr = &analysis.Summary
	}

	experience := analysis.ExperienceList
	if len(experience) == 0 && analysis.Experience != "" {
		experience = []string{analysis.Experience}
	}

	return api.ResumeParseResponse{
		Name:            analysis.Name,
		Email:           analysis.Email,
		Phone:           analysis.Phone,
		Title:           analysis.Title,
		Summary:         summaryPtr,
		Skills:          emptyNotNull(analysis.Skills),
		Experience:      emptyNotNull(experience),
		Education:       emptyNotNull(analysis.Education),
		ParsedText:      parsed.ParsedText,
		ConfidenceScore: parsed.Confidence,
		AtsScore:        parsed.AtsScore,
	}
}

func ToMatchResponse(matches []resumeModel.JobMatch, totalJobs int, processingTimeMs int) api.MatchResponse {
	apiMatches := make([]api.JobMatch, 0, len(matches))
	for _, m := range matches {
		apiMatches = append(apiMatches, api.JobMatch{
			JobID:           m.JobID,
			Title:           m.Title,
			Company:         m.Company,
			SimilarityScore: m.Similarity,
			MatchPercentage: m.Percentage,
			MatchedSkills:   emptyNotNull(m.MatchedSkills),
		})
	}

	return api.MatchResponse{
		Matches:          apiMatches,
		TotalJobs:        totalJobs,
		ProcessingTimeMs: processingTimeMs,
	}
}

func ToMatchJobsResponse(matches []resumeModel.OracleMatch) api.MatchJobsResponse {
	if matches == nil {
		matches = []resumeModel.OracleMatch{}
	}
	return api.MatchJobsResponse{Matches: matches}
}

func BadRequest(message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// emptyNotNull keeps list fields as [] in JSON instead of null.
func emptyNotNull(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
