package oracle

import (
	"encoding/json"
	"strings"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
)

// extractJSON strips surrounding whitespace and markdown code fences from the
// raw oracle response before a strict JSON parse is attempted. Leading and
// trailing fences are stripped independently; either may appear alone.
func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// parseAnalysis normalizes the parsed object into the fixed Analysis field
// set: any missing key defaults to its empty value, name/title stay null.
func parseAnalysis(raw string) (resumeModel.Analysis, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		return resumeModel.Analysis{}, err
	}

	return resumeModel.Analysis{
		Skills:         stringList(data["skills"]),
		Experience:     stringValue(data["experience"]),
		ExperienceList: stringList(data["experience_list"]),
		Email:          stringValue(data["email"]),
		Phone:          stringValue(data["phone"]),
		Name:           stringPtr(data["name"]),
		Title:          stringPtr(data["title"]),
		Summary:        stringValue(data["summary"]),
		Education:      stringList(data["education"]),
		Certifications: stringList(data["certifications"]),
	}, nil
}

func parseMatches(raw string) ([]resumeModel.OracleMatch, error) {
	var matches []resumeModel.OracleMatch
	if err := json.Unmarshal([]byte(extractJSON(raw)), &matches); err != nil {
		return nil, err
	}

	for i := range matches {
		if matches[i].MatchingSkills == nil {
			matches[i].MatchingSkills = []string{}
		}
		if matches[i].MissingSkills == nil {
			matches[i].MissingSkills = []string{}
		}
	}
	return matches, nil
}

// fallbackAnalysis is returned when the oracle answered but not with JSON.
func fallbackAnalysis() resumeModel.Analysis {
	return resumeModel.Analysis{
		Skills:         []string{},
		Experience:     "Unable to parse experience",
		ExperienceList: []string{},
		Summary:        "Unable to parse summary",
		Education:      []string{},
		Certifications: []string{},
		Degraded:       true,
	}
}

// fallbackMatches synthesizes one neutral entry per job, input order,
// truncated to maxMatches.
func fallbackMatches(jobs []resumeModel.JobPosting, maxMatches int) []resumeModel.OracleMatch {
	if maxMatches < 0 {
		maxMatches = 0
	}
	if maxMatches > len(jobs) {
		maxMatches = len(jobs)
	}

	matches := make([]resumeModel.OracleMatch, 0, maxMatches)
	for i, job := range jobs[:maxMatches] {
		id := job.ID
		if id == 0 {
			id = i + 1
		}
		title := job.Title
		if title == "" {
			title = "Unknown Title"
		}
		company := job.Company
		if company == "" {
			company = "Unknown Company"
		}
		matches = append(matches, resumeModel.OracleMatch{
			JobID:          id,
			JobTitle:       title,
			Company:        company,
			MatchScore:     50.0,
			MatchingSkills: []string{},
			MissingSkills:  []string{},
			Explanation:    "Unable to perform detailed analysis due to parsing error.",
		})
	}
	return matches
}

func stringValue(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func stringPtr(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func stringList(raw json.RawMessage) []string {
	if raw == nil {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
