package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// dataExceptionCode is the SQLSTATE pgvector raises when the query vector and the
// stored embeddings differ in dimensions.
const dataExceptionCode = "22000"

// AdvertisementIndex implements the domain.AdvertisementIndex interface with a pgvector
// cosine distance search.
type AdvertisementIndex struct {
	sb squirrel.StatementBuilderType
}

// NewAdvertisementIndex creates a new instance of AdvertisementIndex.
func NewAdvertisementIndex(br squirrel.BaseRunner) AdvertisementIndex {
	return AdvertisementIndex{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SearchAdvertisements returns the advertisements closest to vector. The cosine
// distance d is reported as the similarity (2 - d) / 2, which is (1 + cos) / 2.
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

	embedding := pgvector.NewVector(toFloat32(vector))
	rows, err := ai.sb.
		Select("product", "video_link").
		Column(squirrel.Expr("(2 - (embedding <=> ?)) / 2 AS similarity", embedding)).
		From("advertisements").
		Where("embedding IS NOT NULL").
		OrderByClause(squirrel.Expr("embedding <=> ?", embedding)).
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if err != nil {
		err = toSearchErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	matches := []domain.AdvertisementMatch{}
	for rows.Next() {
		var m domain.AdvertisementMatch
		if err := rows.Scan(&m.Product, &m.VideoLink, &m.Similarity); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return matches, nil
}

// toSearchErr reports a rejected query vector as a validation error so it stays
// with the customer that owns the vector.
func toSearchErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == dataExceptionCode {
		return domain.NewValidationErr("query vector rejected by the index: %s", pgErr.Message)
	}
	return err
}
