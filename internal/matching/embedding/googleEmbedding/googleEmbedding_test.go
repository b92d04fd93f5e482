package googleEmbedding

import (
	"testing"

	"google.golang.org/genai"
)

func TestFirstEmbedding_EmptyResponseErrors(t *testing.T) {
	if _, err := firstEmbedding(nil); err == nil {
		t.Error("nil embeddings must error, not panic")
	}
	if _, err := firstEmbedding([]*genai.ContentEmbedding{}); err == nil {
		t.Error("empty embeddings must error, not panic")
	}
	if _, err := firstEmbedding([]*genai.ContentEmbedding{nil}); err == nil {
		t.Error("nil first embedding must error, not panic")
	}
}

func TestFirstEmbedding_ReturnsValues(t *testing.T) {
	values, err := firstEmbedding([]*genai.ContentEmbedding{{Values: []float32{1, 2}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != 1 {
		t.Errorf("got %v", values)
	}
}

func TestAllEmbeddings_CountMismatchErrors(t *testing.T) {
	embeddings := []*genai.ContentEmbedding{{Values: []float32{1}}}
	if _, err := allEmbeddings(embeddings, 2); err == nil {
		t.Error("short response must error")
	}
	if _, err := allEmbeddings(nil, 1); err == nil {
		t.Error("empty response must error")
	}
}

func TestAllEmbeddings_Roundtrip(t *testing.T) {
	embeddings := []*genai.ContentEmbedding{
		{Values: []float32{1, 0}},
		{Values: []float32{0, 1}},
	}
	vectors, err := allEmbeddings(embeddings, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 2 || vectors[1][1] != 1 {
		t.Errorf("got %v", vectors)
	}
}
