package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedSimilarity(t *testing.T) {
	tests := map[string]struct {
		interest []float64
		ad       []float64
		score    float64
		ok       bool
	}{
		"same-direction-scores-1": {
			interest: []float64{0.2, 0.4, 0.6},
			ad:       []float64{0.1, 0.2, 0.3},
			score:    1,
			ok:       true,
		},
		"unrelated-scores-half": {
			interest: []float64{1, 0},
			ad:       []float64{0, 1},
			score:    0.5,
			ok:       true,
		},
		"opposite-scores-0": {
			interest: []float64{1, 0},
			ad:       []float64{-1, 0},
			score:    0,
			ok:       true,
		},
		"catalog-dimensionality-differs": {
			interest: []float64{1},
			ad:       []float64{1, 0},
			ok:       false,
		},
		"advertisement-without-vector": {
			interest: []float64{1, 0},
			ad:       nil,
			ok:       false,
		},
		"zero-interest-vector": {
			interest: []float64{0, 0},
			ad:       []float64{1, 0},
			ok:       false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			score, ok := NormalizedSimilarity(tt.interest, tt.ad)

			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.score, score, 0.0001)
		})
	}
}

func TestCosineSimilarity_RawRange(t *testing.T) {
	cos, ok := CosineSimilarity([]float64{1, 1, 0}, []float64{1, 0, 1})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, cos, 0.0001)

	cos, ok = CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
	assert.True(t, ok)
	assert.InDelta(t, -1, cos, 0.0001)
}
