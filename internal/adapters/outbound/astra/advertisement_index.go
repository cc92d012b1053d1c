package astra

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AdvertisementIndex implements the domain.AdvertisementIndex interface with a
// Data API vector sort. Astra reports cosine similarity as (1 + cos) / 2.
type AdvertisementIndex struct {
	client     DataAPIClient
	collection string
}

// NewAdvertisementIndex creates a new instance of AdvertisementIndex.
func NewAdvertisementIndex(client DataAPIClient, collection string) AdvertisementIndex {
	return AdvertisementIndex{
		client:     client,
		collection: collection,
	}
}

// SearchAdvertisements returns the advertisements nearest to vector.
func (ai AdvertisementIndex) SearchAdvertisements(ctx context.Context, vector []float64, limit int) ([]domain.AdvertisementMatch, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
		attribute.Int("dimensions", len(vector)),
	))
	defer span.End()

	if limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if len(vector) == 0 {
		err := domain.NewValidationErr("query vector must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	result, err := ai.client.Find(spanCtx, ai.collection, FindCommand{
		Filter:     map[string]any{},
		Sort:       map[string]any{"$vector": vector},
		Projection: map[string]any{"product": 1, "video_link": 1},
		Options: &FindOptions{
			Limit:             limit,
			IncludeSimilarity: true,
		},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("find advertisements: %w", err)
	}

	matches := make([]domain.AdvertisementMatch, 0, len(result.Documents))
	for _, doc := range result.Documents {
		var d advertisementDocument
		if err := json.Unmarshal(doc, &d); telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("decode advertisement document: %w", err)
		}
		matches = append(matches, domain.AdvertisementMatch{
			Product:    d.Product,
			VideoLink:  d.VideoLink,
			Similarity: d.Similarity,
		})
	}
	return matches, nil
}
