package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/oracle"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

type generator struct {
	client    *genai.Client
	modelName string
	logger    *logger_i.Logger
}

// NewGenerator builds the Gemini backend for the oracle adapter.
func NewGenerator(ctx context.Context, apikey string, modelName string) (oracle.Generator, error) {
	logger := logger_i.NewLogger("oracle_gemini")

	if strings.TrimSpace(apikey) == "" {
		return nil, errors.New("gemini api key is required")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return nil, err
	}

	logger.Info("Gemini client created", "model", modelName)
	return &generator{client: c, modelName: modelName, logger: logger}, nil
}

func (g *generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
