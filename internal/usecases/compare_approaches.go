package usecases

import (
	"context"
	"errors"
	"log"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// CompareApproaches defines the interface for the CompareApproaches use case.
type CompareApproaches interface {
	Query(ctx context.Context, customerID string) (domain.ApproachComparison, error)
}

// CompareApproachesImpl is the implementation of the CompareApproaches use case.
type CompareApproachesImpl struct {
	store    domain.InterestStore
	pipeline Pipeline
	logger   *log.Logger
}

// NewCompareApproachesImpl creates a new instance of CompareApproachesImpl.
func NewCompareApproachesImpl(store domain.InterestStore, collector CandidateCollector, logger *log.Logger) CompareApproachesImpl {
	return CompareApproachesImpl{
		store:    store,
		pipeline: NewPipeline(store, collector, logger),
		logger:   logger,
	}
}

// Query fetches the customer once and runs both approaches on the same interests.
// An empty customer id picks a random customer from the store. Rejected scores
// are kept so both approaches can be compared. A failing approach reports its
// error fallback; the comparison only fails when the customer cannot be
// fetched or both approaches fail.
func (cai CompareApproachesImpl) Query(ctx context.Context, customerID string) (domain.ApproachComparison, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if customerID == "" {
		id, err := cai.store.RandomCustomerID(spanCtx)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.ApproachComparison{}, err
		}
		cai.logger.Printf("CompareApproaches: selected random CustomerID: %s", id)
		customerID = id
	}
	span.SetAttributes(attribute.String("customer_id", customerID))

	comparison := domain.ApproachComparison{CustomerID: customerID}

	interests, err := cai.pipeline.FetchCustomer(spanCtx, customerID)
	comparison.Interests = interests.Interests
	if telemetry.RecordErrorAndStatus(span, err) {
		comparison.Selection = cai.pipeline.errorFallback(customerID, interests.Interests, domain.Approach_SELECTION, err)
		comparison.Aggregation = cai.pipeline.errorFallback(customerID, interests.Interests, domain.Approach_AGGREGATION, err)
		return comparison, err
	}

	var selErr, aggErr error
	comparison.Selection, selErr = cai.pipeline.Execute(spanCtx, interests, domain.Approach_SELECTION, domain.FallbackScore_KEEP)
	comparison.Aggregation, aggErr = cai.pipeline.Execute(spanCtx, interests, domain.Approach_AGGREGATION, domain.FallbackScore_KEEP)
	if selErr != nil && aggErr != nil {
		err := errors.Join(selErr, aggErr)
		telemetry.RecordErrorAndStatus(span, err)
		return comparison, err
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return comparison, nil
}

// InitCompareApproaches initializes the CompareApproaches use case and registers it in the dependency container.
type InitCompareApproaches struct {
	Store     domain.InterestStore `resolve:""`
	Collector CandidateCollector   `resolve:""`
	Logger    *log.Logger          `resolve:""`
}

// Initialize initializes the CompareApproachesImpl use case and registers it in the dependency container.
func (ica InitCompareApproaches) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CompareApproaches](NewCompareApproachesImpl(ica.Store, ica.Collector, ica.Logger))
	return ctx, nil
}
