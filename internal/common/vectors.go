package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// NormalizedSimilarity maps the cosine similarity into [0, 1] as (1 + cos) / 2,
// the scale vector stores report for cosine collections.
func NormalizedSimilarity(a, b []float64) (float64, bool) {
	cos, ok := CosineSimilarity(a, b)
	if !ok {
		return 0, false
	}
	return (1 + cos) / 2, true
}
