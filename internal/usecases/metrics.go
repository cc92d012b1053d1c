package usecases

import (
	"context"
	"strconv"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                    = otel.Meter("usecases")
	RecommendationsTotal     metric.Int64Counter
	SimilaritySearchFailures metric.Int64Counter
	CandidatePoolSize        metric.Int64Histogram
)

func init() {
	var err error
	RecommendationsTotal, err = meter.Int64Counter(
		"ad_recommendations_total",
		metric.WithDescription("Total recommendation runs that produced a result, by approach and playback decision"),
	)
	if err != nil {
		panic(err)
	}

	SimilaritySearchFailures, err = meter.Int64Counter(
		"ad_similarity_search_failures_total",
		metric.WithDescription("Similarity searches that failed and were skipped"),
	)
	if err != nil {
		panic(err)
	}

	CandidatePoolSize, err = meter.Int64Histogram(
		"ad_candidate_pool_size",
		metric.WithDescription("Number of candidates collected across all vectors of one run"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordRecommendation records one completed recommendation run.
func RecordRecommendation(ctx context.Context, approach domain.Approach, playAd bool) {
	RecommendationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("approach", string(approach)),
		attribute.String("play_ad", strconv.FormatBool(playAd)),
	))
}

// RecordSimilaritySearchFailure records a skipped similarity search.
func RecordSimilaritySearchFailure(ctx context.Context) {
	SimilaritySearchFailures.Add(ctx, 1)
}

// RecordCandidatePoolSize records the size of a collected candidate pool.
func RecordCandidatePoolSize(ctx context.Context, size int) {
	CandidatePoolSize.Record(ctx, int64(size))
}
