package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/style"
)

// StyleRecommendation is the advisor's answer: a style drawn from the
// catalog it was given, with a short rationale suitable for display.
type StyleRecommendation struct {
	StyleID   kernel.UUID
	StyleName string
	Rationale string
}

// StyleAdvisor defines the gateway to the external style recommendation
// model. Given a customer's free-text description of the occasion and the
// current style catalog, it returns the best matching catalog style.
//
// Implementations must only ever recommend styles present in the supplied
// catalog; the model is untrusted and its output is validated before it
// crosses this boundary.
type StyleAdvisor interface {
	Recommend(ctx context.Context, prompt string, catalog []*style.GarmentStyle) (StyleRecommendation, error)
}
