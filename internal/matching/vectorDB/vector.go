package vectorDB

import "context"

// AnalysisCache is the semantic tier of the analysis cache: lookups are by
// resume embedding, a hit requires cosine similarity above the configured
// cutoff. A nil cache disables the tier entirely.
type AnalysisCache interface {
	GetCachedAnalysis(ctx context.Context, queryVector []float32) (string, bool, error)
	SaveAnalysis(ctx context.Context, id string, vector []float32, analysisJSON string) error
}
