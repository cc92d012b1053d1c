package domain

// Approach selects which vectors a pipeline run queries the advertisement index with.
type Approach string

const (
	// Approach_SELECTION queries once per interest vector and fuses the results.
	Approach_SELECTION Approach = "selection"
	// Approach_AGGREGATION queries once with the mean of all interest vectors.
	Approach_AGGREGATION Approach = "aggregation"
)

// Validate checks that the approach is one of the known values.
func (a Approach) Validate() error {
	switch a {
	case Approach_SELECTION, Approach_AGGREGATION:
		return nil
	}
	return NewValidationErr("unknown approach %q", string(a))
}

// QueryVectors returns the vectors the approach sends to the advertisement index.
// The aggregation approach returns a single vector, or none when the interest
// vectors cannot be aggregated.
func (a Approach) QueryVectors(vectors []InterestVector) []InterestVector {
	if a == Approach_AGGREGATION {
		agg, ok := AggregateInterestVectors(vectors)
		if !ok {
			return nil
		}
		return []InterestVector{agg}
	}
	return vectors
}
