package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RecommendAd defines the interface for the RecommendAd use case.
type RecommendAd interface {
	Query(ctx context.Context, customerID string) (domain.PipelineResult, error)
}

// RecommendAdImpl is the implementation of the RecommendAd use case.
// It runs the selection approach and reports a zero score when the
// fallback advertisement is substituted.
type RecommendAdImpl struct {
	pipeline Pipeline
}

// NewRecommendAdImpl creates a new instance of RecommendAdImpl.
func NewRecommendAdImpl(store domain.InterestStore, collector CandidateCollector, logger *log.Logger) RecommendAdImpl {
	return RecommendAdImpl{
		pipeline: NewPipeline(store, collector, logger),
	}
}

// Query recommends one advertisement for the customer.
func (rai RecommendAdImpl) Query(ctx context.Context, customerID string) (domain.PipelineResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := rai.pipeline.Run(spanCtx, customerID, domain.Approach_SELECTION, domain.FallbackScore_RESET)
	telemetry.RecordErrorAndStatus(span, err)
	return result, err
}

// InitRecommendAd initializes the RecommendAd use case and registers it in the dependency container.
type InitRecommendAd struct {
	Store     domain.InterestStore `resolve:""`
	Collector CandidateCollector   `resolve:""`
	Logger    *log.Logger          `resolve:""`
}

// Initialize initializes the RecommendAdImpl use case and registers it in the dependency container.
func (ira InitRecommendAd) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendAd](NewRecommendAdImpl(ira.Store, ira.Collector, ira.Logger))
	return ctx, nil
}
