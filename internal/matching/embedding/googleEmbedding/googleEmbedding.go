package googleEmbedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/embedding"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

var dimension int32 = config.EmbeddingOutputDimensionality

type client struct {
	genAi  *genai.Client
	model  string
	logger *logger_i.Logger
}

// NewGoogleEmbedder builds the one process-wide embedding client. It is an
// explicit injected dependency of the matching service, not ambient state.
func NewGoogleEmbedder(ctx context.Context, modelName string, apikey string) (embedding.Embedder, error) {
	logger := logger_i.NewLogger("google_embedding")

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Google Embedding client:", "error", err)
		return nil, err
	}

	logger.Info("Google Embedding client created", "model", modelName)
	return &client{genAi: c, model: modelName, logger: logger}, nil
}

func (c *client) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	result, err := c.doCall(ctx, genai.Text(text))
	if err != nil {
		c.logger.Error("Error getting embedding from Google", "error", err)
		return nil, err
	}
	return firstEmbedding(result.Embeddings)
}

// BatchEmbedding encodes all texts in a single call; a rate-limit rejection
// is retried once after a short pause.
func (c *client) BatchEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	result, err := c.doCall(ctx, getContent(texts))
	if err != nil {
		if !doRetry(err, c.logger) {
			return nil, err
		}
		c.logger.Debug("Retrying batch embedding in 5 seconds")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
		}
		result, err = c.doCall(ctx, getContent(texts))
		if err != nil {
			c.logger.Error("Error getting batch embeddings from Google", "error", err)
			return nil, err
		}
	}

	return allEmbeddings(result.Embeddings, len(texts))
}

// firstEmbedding and allEmbeddings guard against a structurally empty or
// short response; the provider can answer 200 with no embeddings attached.
func firstEmbedding(embeddings []*genai.ContentEmbedding) ([]float32, error) {
	if len(embeddings) == 0 || embeddings[0] == nil {
		return nil, errors.New("embedding response contained no embeddings")
	}
	return embeddings[0].Values, nil
}

func allEmbeddings(embeddings []*genai.ContentEmbedding, want int) ([][]float32, error) {
	if len(embeddings) != want {
		return nil, fmt.Errorf("embedding response has %d embeddings for %d texts", len(embeddings), want)
	}

	vectors := make([][]float32, 0, len(embeddings))
	for _, r := range embeddings {
		if r == nil {
			return nil, errors.New("embedding response contained a nil embedding")
		}
		vectors = append(vectors, r.Values)
	}
	return vectors, nil
}

func (c *client) doCall(ctx context.Context, content []*genai.Content) (*genai.EmbedContentResponse, error) {
	return c.genAi.Models.EmbedContent(ctx, c.model, content, &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             "SEMANTIC_SIMILARITY",
	})
}
