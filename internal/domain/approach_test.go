package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApproach_QueryVectors(t *testing.T) {
	vectors := []InterestVector{
		{Vector: []float64{1, 0}, Name: "Cooking"},
		{Vector: []float64{0, 1}, Name: "Travel"},
	}

	tests := map[string]struct {
		approach Approach
		vectors  []InterestVector
		expected [][]float64
	}{
		"selection-queries-every-vector": {
			approach: Approach_SELECTION,
			vectors:  vectors,
			expected: [][]float64{{1, 0}, {0, 1}},
		},
		"aggregation-queries-the-mean": {
			approach: Approach_AGGREGATION,
			vectors:  vectors,
			expected: [][]float64{{0.5, 0.5}},
		},
		"aggregation-without-vectors": {
			approach: Approach_AGGREGATION,
			vectors:  nil,
			expected: [][]float64{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.approach.QueryVectors(tt.vectors)
			raw := [][]float64{}
			for _, v := range got {
				raw = append(raw, v.Vector)
			}
			assert.Equal(t, tt.expected, raw)
		})
	}
}

func TestApproach_Validate(t *testing.T) {
	assert.NoError(t, Approach_SELECTION.Validate())
	assert.NoError(t, Approach_AGGREGATION.Validate())
	assert.Equal(t, NewValidationErr(`unknown approach "hybrid"`), Approach("hybrid").Validate())
}

func TestPipelineResult_ApplyErrorFallback(t *testing.T) {
	r := NewPipelineResult(uuid.Nil, "cust-1", Approach_SELECTION)
	r.ApplySelection(Selection{
		Top:       Candidate{URL: "https://ads/1", Product: "Kettle", Score: 0.8},
		Shortlist: []Recommendation{{URL: "https://ads/1", Product: "Kettle", Score: 0.8}},
	})

	r.ApplyErrorFallback()

	assert.Equal(t, "cust-1", r.CustomerID)
	assert.Equal(t, DefaultVideoURL, r.AdURL)
	assert.Empty(t, r.Product)
	assert.Zero(t, r.Score)
	assert.False(t, r.PlayAd)
	assert.Empty(t, r.Shortlist)
	assert.NotEqual(t, DefaultAdURL, r.AdURL)
}
