package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/oracle"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

type generator struct {
	client    openai.Client
	modelName string
	logger    *logger_i.Logger
}

// pooled transport shared by all oracle calls
var httpClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
	},
}

// NewGenerator builds the OpenAI backend for the oracle adapter, selected
// with ORACLE_PROVIDER=openai.
func NewGenerator(apikey string, modelName string) (oracle.Generator, error) {
	logger := logger_i.NewLogger("oracle_openai")

	if strings.TrimSpace(apikey) == "" {
		return nil, errors.New("openai api key is required")
	}

	c := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithHTTPClient(httpClient),
	)

	logger.Info("OpenAI client created", "model", modelName)
	return &generator{client: c, modelName: modelName, logger: logger}, nil
}

func (g *generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("openai returned an empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
