package qdrantDB

import (
	"context"
	"errors"

	"github.com/qdrant/go-client/qdrant"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

var dimension = uint64(config.EmbeddingOutputDimensionality)

type ClientHolder struct {
	qObj   *qdrant.Client
	logger *logger_i.Logger
}

// NewClient connects to Qdrant and ensures the analysis cache collection
// exists. Returns nil when Qdrant is not configured or unreachable; the
// semantic cache tier is simply disabled in that case.
func NewClient(ctx context.Context) *ClientHolder {
	logger := logger_i.NewLogger("Qdrant")

	host := config.QdrantHost()
	if host == "" {
		logger.Info("QDRANT_HOST not set, semantic analysis cache disabled")
		return nil
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     config.QdrantGrpcPort,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate qdrant client", "error", err)
		return nil
	}

	holder := &ClientHolder{qObj: client, logger: logger}
	if err := holder.createCollection(ctx, config.SemanticCacheCollection); err != nil {
		logger.Error("could not create collection", "collectionName", config.SemanticCacheCollection, "error", err)
		return nil
	}

	go closeQdrant(ctx, client, logger)
	return holder
}

func closeQdrant(ctx context.Context, qi *qdrant.Client, logger *logger_i.Logger) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	if err := qi.Close(); err != nil {
		logger.Error("could not close Qdrant", "error", err)
	}
}

func (db *ClientHolder) createCollection(ctx context.Context, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := db.qObj.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return db.qObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}
