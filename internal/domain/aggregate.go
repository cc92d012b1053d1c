package domain

// AggregateVectors returns the element-wise arithmetic mean of the vectors.
// An empty input yields a nil vector, meaning no aggregate is available.
// All vectors are expected to share the length of the first one.
func AggregateVectors(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}

	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for i := range mean {
			mean[i] += v[i]
		}
	}
	n := float64(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

// AggregateInterestVectors averages the interest vectors into one composite query
// vector. It returns false when there is nothing to aggregate or the vectors do
// not share one dimensionality.
func AggregateInterestVectors(vectors []InterestVector) (InterestVector, bool) {
	if len(vectors) == 0 {
		return InterestVector{}, false
	}

	raw := make([][]float64, 0, len(vectors))
	dim := len(vectors[0].Vector)
	for _, v := range vectors {
		if len(v.Vector) != dim {
			return InterestVector{}, false
		}
		raw = append(raw, v.Vector)
	}

	mean := AggregateVectors(raw)
	if len(mean) == 0 {
		return InterestVector{}, false
	}
	return InterestVector{
		Vector:      mean,
		Name:        "aggregated",
		Description: "mean of all interest vectors",
	}, true
}
