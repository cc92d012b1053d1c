package domain

import (
	"context"
	"strings"
)

// InterestRecord is one stored customer interest as returned by the InterestStore.
// Vector may be empty when the upstream embedding job has not produced one.
type InterestRecord struct {
	CustomerID  string
	Name        string
	Description string
	Vector      []float64
}

// InterestVector is a usable interest embedding tagged with its display text.
type InterestVector struct {
	Vector      []float64
	Name        string
	Description string
}

// UserInterests is the merged display text of all of a customer's interests.
type UserInterests struct {
	InterestName        string
	InterestDescription string
}

// CustomerInterests is the read model the pipeline works on: the merged interest
// text plus every usable interest vector in store order.
type CustomerInterests struct {
	CustomerID string
	Interests  UserInterests
	Vectors    []InterestVector
}

// InterestStore reads customer interests. Implementations never mutate the store.
type InterestStore interface {
	// ListInterests returns every interest record of the customer, in store order.
	// An unknown customer yields an empty slice and no error.
	ListInterests(ctx context.Context, customerID string) ([]InterestRecord, error)
	// RandomCustomerID returns the id of an arbitrary customer that owns interests.
	// It returns a NotFoundErr when the store is empty.
	RandomCustomerID(ctx context.Context) (string, error)
}

// NewCustomerInterests builds the read model from raw records.
//
// It returns a NotFoundErr when there are no records and a ValidationErr when
// none of the records carries a vector.
func NewCustomerInterests(customerID string, records []InterestRecord) (CustomerInterests, error) {
	if len(records) == 0 {
		return CustomerInterests{}, NewNotFoundErr("no entries found for UserId: %s", customerID)
	}

	names := make([]string, 0, len(records))
	descriptions := make([]string, 0, len(records))
	vectors := make([]InterestVector, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
		descriptions = append(descriptions, r.Description)
		if len(r.Vector) == 0 {
			continue
		}
		vectors = append(vectors, InterestVector{
			Vector:      r.Vector,
			Name:        r.Name,
			Description: r.Description,
		})
	}

	ci := CustomerInterests{
		CustomerID: customerID,
		Interests: UserInterests{
			InterestName:        joinDistinct(names),
			InterestDescription: joinDistinct(descriptions),
		},
		Vectors: vectors,
	}
	if len(vectors) == 0 {
		return ci, NewValidationErr("no valid $vector found for UserId: %s", customerID)
	}
	return ci, nil
}

// joinDistinct joins the non-empty values with ", " keeping first-seen order.
func joinDistinct(values []string) string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return strings.Join(out, ", ")
}
