package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomerInterests(t *testing.T) {
	tests := map[string]struct {
		records     []InterestRecord
		expected    CustomerInterests
		expectedErr error
	}{
		"no-records": {
			records:     nil,
			expected:    CustomerInterests{},
			expectedErr: NewNotFoundErr("no entries found for UserId: cust-1"),
		},
		"records-without-vectors": {
			records: []InterestRecord{
				{CustomerID: "cust-1", Name: "Cooking", Description: "Italian food"},
			},
			expected: CustomerInterests{
				CustomerID: "cust-1",
				Interests: UserInterests{
					InterestName:        "Cooking",
					InterestDescription: "Italian food",
				},
				Vectors: []InterestVector{},
			},
			expectedErr: NewValidationErr("no valid $vector found for UserId: cust-1"),
		},
		"merges-text-and-keeps-usable-vectors": {
			records: []InterestRecord{
				{CustomerID: "cust-1", Name: "Cooking", Description: "Italian food", Vector: []float64{0.1, 0.2}},
				{CustomerID: "cust-1", Name: "Travel", Description: "", Vector: nil},
				{CustomerID: "cust-1", Name: "Cooking", Description: "Baking", Vector: []float64{0.3, 0.4}},
			},
			expected: CustomerInterests{
				CustomerID: "cust-1",
				Interests: UserInterests{
					InterestName:        "Cooking, Travel",
					InterestDescription: "Italian food, Baking",
				},
				Vectors: []InterestVector{
					{Vector: []float64{0.1, 0.2}, Name: "Cooking", Description: "Italian food"},
					{Vector: []float64{0.3, 0.4}, Name: "Cooking", Description: "Baking"},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewCustomerInterests("cust-1", tt.records)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
