package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/pipeline/parse"
)

// Ranked pairs an input index with its similarity score.
type Ranked struct {
	Index int
	Score float64
}

// Cosine computes the cosine similarity between two vectors. Mismatched or
// zero-magnitude vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Rank scores every job vector against the resume vector and returns
// (index, score) pairs sorted by score descending, ties broken by input
// index ascending.
func Rank(resume []float32, jobs [][]float32) []Ranked {
	ranked := make([]Ranked, len(jobs))
	for i, job := range jobs {
		ranked[i] = Ranked{Index: i, Score: Cosine(resume, job)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// MatchedSkills returns vocabulary terms present in both texts,
// case-insensitive substring match, input vocabulary order.
func MatchedSkills(resumeText, jobText string) []string {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	matched := []string{}
	for _, skill := range parse.SkillVocabulary {
		if strings.Contains(resumeLower, skill) && strings.Contains(jobLower, skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
