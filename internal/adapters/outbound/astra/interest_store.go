package astra

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// maxInterestPages bounds the pages read for a single customer.
	maxInterestPages = 50
	// maxRandomSkip bounds the skip of a random pick; large skips time out on the Data API.
	maxRandomSkip = 100
	// randomBatchSize is the number of documents a random customer is drawn from.
	randomBatchSize = 10
	// countUpperBound caps countDocuments.
	countUpperBound = 1000
)

var interestProjection = map[string]any{
	"UserId":              1,
	"InterestName":        1,
	"InterestDescription": 1,
	"$vector":             1,
}

// InterestStore implements the domain.InterestStore interface on an Astra collection.
type InterestStore struct {
	client     DataAPIClient
	collection string
	randIntN   func(n int) int
}

// NewInterestStore creates a new instance of InterestStore.
func NewInterestStore(client DataAPIClient, collection string) InterestStore {
	return InterestStore{
		client:     client,
		collection: collection,
		randIntN:   rand.IntN,
	}
}

// ListInterests returns every interest document of the customer, following
// nextPageState until the last page.
func (is InterestStore) ListInterests(ctx context.Context, customerID string) ([]domain.InterestRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("customer_id", customerID),
	))
	defer span.End()

	records := []domain.InterestRecord{}
	pageState := ""
	for page := 0; page < maxInterestPages; page++ {
		cmd := FindCommand{
			Filter:     map[string]any{"UserId": customerID},
			Projection: interestProjection,
		}
		if pageState != "" {
			cmd.Options = &FindOptions{PageState: pageState}
		}

		result, err := is.client.Find(spanCtx, is.collection, cmd)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("find interests: %w", err)
		}

		for _, doc := range result.Documents {
			record, err := decodeInterest(doc)
			if telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
			records = append(records, record)
		}

		if result.NextPageState == nil || *result.NextPageState == "" {
			break
		}
		pageState = *result.NextPageState
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

// RandomCustomerID draws a customer from a small batch at a random offset of the
// collection sorted by UserId.
func (is InterestStore) RandomCustomerID(ctx context.Context) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	count, err := is.client.CountDocuments(spanCtx, is.collection, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("count interests: %w", err)
	}
	total := min(count.Count, countUpperBound)
	if total == 0 {
		err := domain.NewNotFoundErr("no customers found")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	skip := 0
	if total > 1 {
		skip = is.randIntN(min(total-1, maxRandomSkip) + 1)
	}

	result, err := is.client.Find(spanCtx, is.collection, FindCommand{
		Filter:     map[string]any{},
		Sort:       map[string]any{"UserId": 1},
		Projection: map[string]any{"UserId": 1},
		Options: &FindOptions{
			Skip:  skip,
			Limit: min(randomBatchSize, total-skip),
		},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("find random interests: %w", err)
	}
	if len(result.Documents) == 0 {
		err := domain.NewNotFoundErr("no customers found")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	doc, err := decodeInterest(result.Documents[is.randIntN(len(result.Documents))])
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return doc.CustomerID, nil
}

func decodeInterest(doc Document) (domain.InterestRecord, error) {
	var d interestDocument
	if err := json.Unmarshal(doc, &d); err != nil {
		return domain.InterestRecord{}, fmt.Errorf("decode interest document: %w", err)
	}
	return domain.InterestRecord{
		CustomerID:  d.UserID,
		Name:        d.InterestName,
		Description: d.InterestDescription,
		Vector:      d.Vector,
	}, nil
}
