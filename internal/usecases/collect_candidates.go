package usecases

import (
	"context"
	"errors"
	"log"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// candidatesLoggedPerVector is how many candidates of each vector are written to the log.
const candidatesLoggedPerVector = 5

// CandidateCollector fans a list of interest vectors out to the advertisement index
// and merges the hits into one candidate pool.
type CandidateCollector interface {
	Collect(ctx context.Context, vectors []domain.InterestVector) (domain.CandidatePool, error)
}

// CandidateCollectorImpl is the implementation of the CandidateCollector.
type CandidateCollectorImpl struct {
	index  domain.AdvertisementIndex
	logger *log.Logger
}

// NewCandidateCollectorImpl creates a new instance of CandidateCollectorImpl.
func NewCandidateCollectorImpl(index domain.AdvertisementIndex, logger *log.Logger) CandidateCollectorImpl {
	return CandidateCollectorImpl{
		index:  index,
		logger: logger,
	}
}

// Collect queries the index once per vector, strictly in order. A failing query
// is logged and skipped; the collection only fails when no vector produced any
// candidate, or when the context is done.
func (cc CandidateCollectorImpl) Collect(ctx context.Context, vectors []domain.InterestVector) (domain.CandidatePool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("vectors", len(vectors)),
	))
	defer span.End()

	pool := domain.CandidatePool{}
	for idx, v := range vectors {
		cc.logger.Printf("CandidateCollector: performing similarity search for vector %d/%d (Interest: %s, Description: %s)",
			idx+1, len(vectors), v.Name, v.Description)

		matches, err := cc.index.SearchAdvertisements(spanCtx, v.Vector, domain.SearchLimit)
		if err != nil {
			if ctxErr := spanCtx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				telemetry.RecordErrorAndStatus(span, err)
				return nil, err
			}
			cc.logger.Printf("CandidateCollector: similarity search failed for vector %d: %v", idx+1, err)
			span.RecordError(err)
			RecordSimilaritySearchFailure(spanCtx)
			continue
		}
		if len(matches) == 0 {
			cc.logger.Printf("CandidateCollector: no advertisements found for vector %d", idx+1)
			continue
		}

		candidates := cc.toCandidates(idx, matches)
		if len(candidates) > 0 {
			cc.logger.Printf("CandidateCollector: top recommendations for vector %d (Interest: %s, Description: %s):",
				idx+1, v.Name, v.Description)
			for _, c := range candidates[:min(candidatesLoggedPerVector, len(candidates))] {
				cc.logger.Printf("  - %s", c)
			}
		}
		pool = append(pool, candidates...)
	}

	RecordCandidatePoolSize(spanCtx, len(pool))

	if len(pool) == 0 {
		err := domain.NewNotFoundErr("no advertisements found across all vectors")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("candidates", len(pool)))
	telemetry.RecordErrorAndStatus(span, nil)
	return pool, nil
}

// toCandidates converts the matches of one query, dropping link-less matches and
// repeated products. The first occurrence of a product, by rank, wins.
func (cc CandidateCollectorImpl) toCandidates(vectorIdx int, matches []domain.AdvertisementMatch) []domain.Candidate {
	seenProducts := make(map[string]struct{}, len(matches))
	candidates := make([]domain.Candidate, 0, len(matches))
	for _, m := range matches {
		if _, ok := seenProducts[m.Product]; ok {
			cc.logger.Printf("CandidateCollector: duplicate product found in search results for vector %d: %s", vectorIdx+1, m.Product)
			continue
		}
		url := m.PlaybackURL()
		if url == "" {
			continue
		}
		seenProducts[m.Product] = struct{}{}
		candidates = append(candidates, domain.Candidate{
			URL:         url,
			Product:     m.Product,
			Score:       m.Similarity,
			VectorIndex: vectorIdx,
		})
	}
	return candidates
}

// InitCandidateCollector initializes the CandidateCollector and registers it in the dependency container.
type InitCandidateCollector struct {
	Index  domain.AdvertisementIndex `resolve:""`
	Logger *log.Logger               `resolve:""`
}

// Initialize registers the CandidateCollector in the dependency container.
func (icc InitCandidateCollector) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CandidateCollector](NewCandidateCollectorImpl(icc.Index, icc.Logger))
	return ctx, nil
}
