package embedding

import "context"

// Embedder encodes text into fixed-size dense vectors. One shared client is
// initialized at startup and treated as immutable for the process lifetime.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
	BatchEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}
