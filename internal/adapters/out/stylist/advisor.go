// Package stylist implements the StyleAdvisor port on top of Google's Gemini
// API. The model is asked to pick one style from the atelier's own catalog;
// its answer is parsed and validated against the catalog before it is
// returned, so a hallucinated style never reaches the workflow.
package stylist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/style"
	"atelier/internal/core/ports"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

var (
	// ErrEmptyCatalog is returned when there are no styles to recommend from.
	ErrEmptyCatalog = errors.New("style catalog is empty")

	// ErrUnknownStyleRecommended is returned when the model names a style
	// that is not part of the catalog.
	ErrUnknownStyleRecommended = errors.New("recommended style is not in the catalog")
)

// GenAIStyleAdvisor recommends garment styles using the Gemini API.
type GenAIStyleAdvisor struct {
	client *genai.Client
	model  string
}

// NewGenAIStyleAdvisor creates a style advisor backed by the Gemini API.
func NewGenAIStyleAdvisor(ctx context.Context, apiKey, model string) (*GenAIStyleAdvisor, error) {
	if apiKey == "" {
		return nil, errors.New("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIStyleAdvisor{
		client: client,
		model:  model,
	}, nil
}

// Recommend asks the model to pick the catalog style best matching the
// customer's description of the occasion and their preferences.
func (a *GenAIStyleAdvisor) Recommend(
	ctx context.Context,
	prompt string,
	catalog []*style.GarmentStyle,
) (ports.StyleRecommendation, error) {
	if len(catalog) == 0 {
		return ports.StyleRecommendation{}, ErrEmptyCatalog
	}

	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(prompt, catalog), genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"style_id":  {Type: genai.TypeString},
				"rationale": {Type: genai.TypeString},
			},
			Required: []string{"style_id", "rationale"},
		},
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return ports.StyleRecommendation{}, fmt.Errorf("GenAI recommendation failed: %w", err)
	}

	return ParseRecommendation(result.Text(), catalog)
}

// buildPrompt renders the catalog and the customer's request into a single
// instruction. Only style IDs from the rendered catalog are valid answers.
func buildPrompt(prompt string, catalog []*style.GarmentStyle) string {
	var b strings.Builder
	b.WriteString("You are a tailoring assistant for a custom garment atelier.\n")
	b.WriteString("Pick exactly one style from the catalog below that best fits the request.\n")
	b.WriteString("Answer with the style_id of your pick and a short rationale.\n\n")
	b.WriteString("Catalog:\n")
	for _, s := range catalog {
		fmt.Fprintf(&b, "- style_id: %s, name: %s\n", s.ID(), s.Name())
	}
	b.WriteString("\nRequest:\n")
	b.WriteString(prompt)
	return b.String()
}

// recommendationDTO is the JSON shape the model is constrained to return.
type recommendationDTO struct {
	StyleID   string `json:"style_id"`
	Rationale string `json:"rationale"`
}

// ParseRecommendation decodes a model response and validates it against the
// catalog. The style name in the result always comes from the catalog, never
// from the model.
func ParseRecommendation(raw string, catalog []*style.GarmentStyle) (ports.StyleRecommendation, error) {
	var dto recommendationDTO
	if err := json.Unmarshal([]byte(stripFences(raw)), &dto); err != nil {
		return ports.StyleRecommendation{}, fmt.Errorf("failed to decode recommendation: %w", err)
	}

	for _, s := range catalog {
		if s.ID().String() == dto.StyleID {
			return ports.StyleRecommendation{
				StyleID:   s.ID(),
				StyleName: s.Name(),
				Rationale: dto.Rationale,
			}, nil
		}
	}

	return ports.StyleRecommendation{}, fmt.Errorf("%w: %s", ErrUnknownStyleRecommended, dto.StyleID)
}

// stripFences removes a markdown code fence if the model wrapped its JSON in one.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
