package resilience

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BackendIndexName is the name under which storage adapters register their raw
// advertisement index, before it is guarded by the circuit breaker.
const BackendIndexName = "advertisement-index-backend"

// BreakerSettings configures when the breaker opens and how it recovers.
type BreakerSettings struct {
	// MinRequests is the number of requests in one interval before the failure ratio is considered.
	MinRequests int
	// FailurePercent opens the breaker once this share of requests failed.
	FailurePercent int
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests int
	// Interval is the cyclic period after which the closed-state counts reset.
	Interval time.Duration
	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration
}

// BreakerIndex guards an advertisement index with a circuit breaker so a failing
// vector database is skipped quickly instead of timing out once per vector.
type BreakerIndex struct {
	index  domain.AdvertisementIndex
	cb     *gobreaker.CircuitBreaker[[]domain.AdvertisementMatch]
	logger *log.Logger
}

// NewBreakerIndex wraps index with a circuit breaker.
func NewBreakerIndex(index domain.AdvertisementIndex, settings BreakerSettings, logger *log.Logger) *BreakerIndex {
	bi := &BreakerIndex{
		index:  index,
		logger: logger,
	}
	bi.cb = gobreaker.NewCircuitBreaker[[]domain.AdvertisementMatch](gobreaker.Settings{
		Name:        "advertisement-index",
		MaxRequests: uint32(max(settings.MaxRequests, 1)),
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < uint32(max(settings.MinRequests, 1)) {
				return false
			}
			return counts.TotalFailures*100 >= counts.Requests*uint32(settings.FailurePercent)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Printf("BreakerIndex: circuit %s changed from %s to %s", name, from, to)
		},
		IsSuccessful: isSuccessful,
	})
	return bi
}

// isSuccessful reports whether err leaves the breaker counts untouched as a success.
// A caller giving up and a rejected query vector belong to one request, not to
// the health of the index.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ve *domain.ValidationErr
	return errors.As(err, &ve)
}

// SearchAdvertisements runs the search through the circuit breaker. While the
// breaker is open the call fails immediately.
func (bi *BreakerIndex) SearchAdvertisements(ctx context.Context, vector []float64, limit int) ([]domain.AdvertisementMatch, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("breaker.state", bi.cb.State().String()),
	))
	defer span.End()

	matches, err := bi.cb.Execute(func() ([]domain.AdvertisementMatch, error) {
		return bi.index.SearchAdvertisements(spanCtx, vector, limit)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("advertisement index unavailable: %w", err)
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return matches, nil
}

// State returns the current breaker state.
func (bi *BreakerIndex) State() gobreaker.State {
	return bi.cb.State()
}

// InitBreakerIndex resolves the advertisement index registered by the storage
// adapter, guards it with a circuit breaker and registers the result as the
// domain.AdvertisementIndex.
type InitBreakerIndex struct {
	Logger         *log.Logger   `resolve:""`
	MinRequests    int           `config:"INDEX_BREAKER_MIN_REQUESTS" default:"5"`
	FailurePercent int           `config:"INDEX_BREAKER_FAILURE_PERCENT" default:"60"`
	MaxRequests    int           `config:"INDEX_BREAKER_MAX_REQUESTS" default:"1"`
	Interval       time.Duration `config:"INDEX_BREAKER_INTERVAL" default:"1m"`
	Timeout        time.Duration `config:"INDEX_BREAKER_TIMEOUT" default:"30s"`
}

// Initialize registers the guarded domain.AdvertisementIndex in the dependency container.
func (ibi InitBreakerIndex) Initialize(ctx context.Context) (context.Context, error) {
	index, err := depend.ResolveNamed[domain.AdvertisementIndex](BackendIndexName)
	if err != nil {
		return ctx, fmt.Errorf("resolve backend advertisement index: %w", err)
	}

	depend.Register[domain.AdvertisementIndex](NewBreakerIndex(index, BreakerSettings{
		MinRequests:    ibi.MinRequests,
		FailurePercent: ibi.FailurePercent,
		MaxRequests:    ibi.MaxRequests,
		Interval:       ibi.Interval,
		Timeout:        ibi.Timeout,
	}, ibi.Logger))
	return ctx, nil
}
