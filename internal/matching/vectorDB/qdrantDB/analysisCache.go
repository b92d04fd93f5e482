package qdrantDB

import (
	"context"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
)

// GetCachedAnalysis looks up the nearest stored resume vector. Only a near
// duplicate counts: the score must clear the similarity cutoff, otherwise the
// caller proceeds to the oracle.
func (db *ClientHolder) GetCachedAnalysis(ctx context.Context, queryVector []float32) (string, bool, error) {
	searchResult, err := db.qObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: config.SemanticCacheCollection,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		db.logger.Error("analysis cache query failed", "error", err)
		return "", false, err
	}
	if len(searchResult) == 0 {
		return "", false, nil
	}

	db.logger.Debug("nearest cached analysis", "score", searchResult[0].Score)
	if float64(searchResult[0].Score) < config.CacheSimilarityCutoff {
		return "", false, nil
	}

	db.logger.Info("semantic analysis cache hit")
	return searchResult[0].Payload["analysis"].GetStringValue(), true, nil
}

// SaveAnalysis stores a normalized analysis JSON under the resume vector.
func (db *ClientHolder) SaveAnalysis(ctx context.Context, id string, vector []float32, analysisJSON string) error {
	_, err := db.qObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: config.SemanticCacheCollection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(id),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"analysis":  analysisJSON,
					"timestamp": time.Now().Unix(),
				}),
			},
		},
	})
	if err != nil {
		db.logger.Error("saving analysis to semantic cache failed", "error", err)
	}
	return err
}
