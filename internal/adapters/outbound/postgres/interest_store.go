package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	interestFields = []string{
		"user_id",
		"interest_name",
		"interest_description",
		"embedding",
	}
)

// InterestStore implements the domain.InterestStore interface using PostgreSQL as the storage backend.
type InterestStore struct {
	sb squirrel.StatementBuilderType
}

// NewInterestStore creates a new instance of InterestStore.
func NewInterestStore(br squirrel.BaseRunner) InterestStore {
	return InterestStore{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListInterests returns the customer's interest rows in insertion order.
func (is InterestStore) ListInterests(ctx context.Context, customerID string) ([]domain.InterestRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("customer_id", customerID),
	))
	defer span.End()

	rows, err := is.sb.
		Select(interestFields...).
		From("user_interests").
		Where(squirrel.Eq{"user_id": customerID}).
		OrderBy("id").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	records := []domain.InterestRecord{}
	for rows.Next() {
		var (
			record    domain.InterestRecord
			embedding *pgvector.Vector
		)
		err := rows.Scan(
			&record.CustomerID,
			&record.Name,
			&record.Description,
			&embedding,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if embedding != nil {
			record.Vector = toFloat64(embedding.Slice())
		}
		records = append(records, record)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return records, nil
}

// RandomCustomerID returns the user_id of a random interest row.
func (is InterestStore) RandomCustomerID(ctx context.Context) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var customerID string
	err := is.sb.
		Select("user_id").
		From("user_interests").
		OrderBy("random()").
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(&customerID)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.NewNotFoundErr("no customers found")
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return customerID, nil
}

func toFloat64(input []float32) []float64 {
	f64 := make([]float64, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}
