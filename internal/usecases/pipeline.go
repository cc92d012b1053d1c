package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Pipeline sequences one recommendation run:
// FetchCustomer -> CollectCandidates -> SelectTopMatch -> ValidateThreshold.
// A customer that cannot be fetched short-circuits to the error fallback.
type Pipeline struct {
	store     domain.InterestStore
	collector CandidateCollector
	logger    *log.Logger
	newRunID  func() uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(store domain.InterestStore, collector CandidateCollector, logger *log.Logger) Pipeline {
	return Pipeline{
		store:     store,
		collector: collector,
		logger:    logger,
		newRunID:  uuid.New,
	}
}

// Run executes the whole pipeline for one customer. On error the returned result
// is the error fallback, so callers always get a total record.
func (p Pipeline) Run(ctx context.Context, customerID string, approach domain.Approach, policy domain.FallbackScorePolicy) (domain.PipelineResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("customer_id", customerID),
		attribute.String("approach", string(approach)),
	))
	defer span.End()

	interests, err := p.FetchCustomer(spanCtx, customerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return p.errorFallback(customerID, interests.Interests, approach, err), err
	}

	result, err := p.Execute(spanCtx, interests, approach, policy)
	telemetry.RecordErrorAndStatus(span, err)
	return result, err
}

// FetchCustomer loads and validates the customer's interests. It returns a
// NotFoundErr for an empty id or a customer without records, and a
// ValidationErr when no record carries a vector. The merged interest text is
// returned even when the vectors are unusable.
func (p Pipeline) FetchCustomer(ctx context.Context, customerID string) (domain.CustomerInterests, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if customerID == "" {
		err := domain.NewNotFoundErr("no CustomerID provided")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CustomerInterests{}, err
	}

	records, err := p.store.ListInterests(spanCtx, customerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CustomerInterests{}, err
	}

	interests, err := domain.NewCustomerInterests(customerID, records)
	if telemetry.RecordErrorAndStatus(span, err) {
		p.logger.Printf("Pipeline: %v", err)
		return interests, err
	}

	p.logger.Printf("Pipeline: retrieved data for CustomerID: %s, Interests: %+v, Number of Vectors: %d",
		customerID, interests.Interests, len(interests.Vectors))
	return interests, nil
}

// Execute runs collection, selection and threshold validation for already
// fetched interests, querying the vectors chosen by the approach.
func (p Pipeline) Execute(ctx context.Context, interests domain.CustomerInterests, approach domain.Approach, policy domain.FallbackScorePolicy) (domain.PipelineResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("approach", string(approach)),
	))
	defer span.End()

	if err := approach.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return p.errorFallback(interests.CustomerID, interests.Interests, approach, err), err
	}

	vectors := approach.QueryVectors(interests.Vectors)
	if len(vectors) == 0 {
		err := domain.NewValidationErr("no %s vector available for UserId: %s", approach, interests.CustomerID)
		telemetry.RecordErrorAndStatus(span, err)
		return p.errorFallback(interests.CustomerID, interests.Interests, approach, err), err
	}

	pool, err := p.collector.Collect(spanCtx, vectors)
	if telemetry.RecordErrorAndStatus(span, err) {
		return p.errorFallback(interests.CustomerID, interests.Interests, approach, err), err
	}

	result := domain.NewPipelineResult(p.newRunID(), interests.CustomerID, approach)
	result.Interests = interests.Interests

	selection := domain.RankAndDedup(pool)
	result.ApplySelection(selection)
	p.logger.Printf("Pipeline[%s]: top advertisement (%s approach, vector %d): %s",
		result.RunID, approach, selection.Top.VectorIndex+1, selection.Top)
	p.logger.Printf("Pipeline[%s]: top %d recommendations (%s approach):", result.RunID, len(result.Shortlist), approach)
	for _, r := range result.Shortlist {
		p.logger.Printf("  - URL: %s, Product: %s, Score: %v", r.URL, r.Product, r.Score)
	}

	domain.ValidateThreshold(&result, policy)
	if result.PlayAd {
		p.logger.Printf("Pipeline[%s]: similarity score %v meets threshold %v, approving advertisement (%s approach): %s",
			result.RunID, result.Score, domain.SimilarityThreshold, approach, result.AdURL)
	} else {
		p.logger.Printf("Pipeline[%s]: similarity score %v below threshold %v, using default advertisement (%s approach), interests: %+v",
			result.RunID, result.Rejected.Score, domain.SimilarityThreshold, approach, result.Interests)
	}

	span.SetAttributes(
		attribute.Bool("play_ad", result.PlayAd),
		attribute.Float64("similarity_score", selection.Top.Score),
	)
	RecordRecommendation(spanCtx, approach, result.PlayAd)
	telemetry.RecordErrorAndStatus(span, nil)
	return result, nil
}

func (p Pipeline) errorFallback(customerID string, interests domain.UserInterests, approach domain.Approach, cause error) domain.PipelineResult {
	p.logger.Printf("Pipeline: no valid CustomerID or recommendations found for %q (%s approach): %v", customerID, approach, cause)
	result := domain.NewPipelineResult(p.newRunID(), customerID, approach)
	result.Interests = interests
	result.ApplyErrorFallback()
	return result
}
