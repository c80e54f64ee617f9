package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gasthof/internal/models"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

const defaultModel = "models/gemini-1.5-pro"

// GeminiExtractor turns free-form guest messages into structured
// inquiries using a Gemini generative model.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zerolog.Logger
}

func NewGeminiExtractor(ctx context.Context, apiKey, modelName string, logger *zerolog.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	return &GeminiExtractor{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiExtractor) Close() error {
	return g.client.Close()
}

func (g *GeminiExtractor) Extract(ctx context.Context, freeText string, today time.Time) (*models.ExtractedInquiry, error) {
	prompt := buildExtractionPrompt(freeText, today)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	inquiry, err := parseInquiry(sb.String())
	if err != nil {
		g.logger.Error().Err(err).Str("raw", sb.String()).Msg("gemini response parse error")
		return nil, err
	}
	return inquiry, nil
}
