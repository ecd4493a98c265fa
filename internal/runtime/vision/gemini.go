package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/constants/prompts"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
	"google.golang.org/api/option"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

var supportedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// GeminiIdentifier runs gemstone identification against a Gemini vision
// model.
type GeminiIdentifier struct {
	client    *genai.Client
	logger    *Logger.Logger
	modelName string
}

func NewGeminiIdentifier(cfg config.GeminiConfig, logger *Logger.Logger) (*GeminiIdentifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini API client: %w", err)
	}

	modelName := cfg.VisionModel
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &GeminiIdentifier{
		client:    client,
		logger:    logger,
		modelName: modelName,
	}, nil
}

// Identify implements Identifier.
func (g *GeminiIdentifier) Identify(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("empty image buffer")
	}
	if !supportedMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mimeType)
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	model := g.client.GenerativeModel(g.modelName)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompts.GemstoneIdentification()),
		genai.ImageData(strings.TrimPrefix(mimeType, "image/"), image),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini identification failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	result, err := parseResult(text)
	if err != nil {
		g.logger.Errorf("failed to parse gemini identification response: %v", err)
		return nil, err
	}

	result.Metadata = Metadata{
		ModelUsed:         g.modelName,
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
		ImageQualityScore: estimateImageQuality(len(image)),
	}

	g.logger.Infof("identified gemstone: %s (confidence %.2f)",
		result.PrimaryMatch.Name, result.PrimaryMatch.Confidence)
	return result, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return sb.String()
}

// parseResult tolerates markdown code fences and stray prose around the JSON
// object the model was asked for.
func parseResult(text string) (*Result, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		// Fallback: extract the outermost JSON object
		match := jsonObjectRe.FindString(text)
		if match == "" {
			return nil, fmt.Errorf("no valid JSON in model response")
		}
		if err := json.Unmarshal([]byte(match), &result); err != nil {
			return nil, fmt.Errorf("model returned invalid JSON: %w", err)
		}
	}

	normalizeResult(&result)
	if err := validateResult(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func normalizeResult(r *Result) {
	if r.PrimaryMatch.Name == "" && r.PrimaryMatch.StoneName != "" {
		r.PrimaryMatch.Name = r.PrimaryMatch.StoneName
	}
	if r.AlternativeMatches == nil {
		r.AlternativeMatches = []Match{}
	}
	for i := range r.AlternativeMatches {
		if r.AlternativeMatches[i].Name == "" {
			r.AlternativeMatches[i].Name = r.AlternativeMatches[i].StoneName
		}
	}
	if r.Reasoning == "" {
		r.Reasoning = r.PrimaryMatch.Reasoning
	}
}

func validateResult(r *Result) error {
	if r.PrimaryMatch.Name == "" {
		return fmt.Errorf("model response missing primary match name")
	}
	if r.PrimaryMatch.Confidence < 0 || r.PrimaryMatch.Confidence > 1 {
		return fmt.Errorf("model response has invalid confidence %f", r.PrimaryMatch.Confidence)
	}
	return nil
}

// Size-based heuristic; good enough to hint clients about retake quality.
func estimateImageQuality(sizeBytes int) int {
	sizeKB := sizeBytes / 1024
	switch {
	case sizeKB < 50:
		return 3
	case sizeKB < 200:
		return 5
	case sizeKB < 500:
		return 7
	case sizeKB < 1000:
		return 8
	default:
		return 9
	}
}
