package usecases

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecommendAdImpl_Query(t *testing.T) {
	tests := map[string]struct {
		customerID      string
		setExpectations func(store *domain.MockInterestStore, index *domain.MockAdvertisementIndex)
		assertResult    func(t *testing.T, got domain.PipelineResult)
		expectedErr     error
	}{
		"plays-advertisement": {
			customerID: "cust-1",
			setExpectations: func(store *domain.MockInterestStore, index *domain.MockAdvertisementIndex) {
				store.EXPECT().ListInterests(mock.Anything, "cust-1").Return([]domain.InterestRecord{hikingRec, cookRec}, nil)
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Boots", VideoLink: "https://v/?v=boots", Similarity: 0.8},
				}, nil)
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{0, 1}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Pasta", VideoLink: "https://v/?v=pasta", Similarity: 0.8},
				}, nil)
			},
			assertResult: func(t *testing.T, got domain.PipelineResult) {
				assert.Equal(t, domain.Approach_SELECTION, got.Approach)
				assert.True(t, got.PlayAd)
				assert.Equal(t, "Boots", got.Product, "ties prefer the earlier vector")
				assert.Len(t, got.Shortlist, 2)
			},
		},
		"below-threshold-resets-score": {
			customerID: "cust-1",
			setExpectations: func(store *domain.MockInterestStore, index *domain.MockAdvertisementIndex) {
				store.EXPECT().ListInterests(mock.Anything, "cust-1").Return([]domain.InterestRecord{hikingRec}, nil)
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Boots", VideoLink: "https://v/?v=boots", Similarity: 0.6999},
				}, nil)
			},
			assertResult: func(t *testing.T, got domain.PipelineResult) {
				assert.False(t, got.PlayAd)
				assert.Equal(t, domain.DefaultAdURL, got.AdURL)
				assert.Equal(t, domain.DefaultProduct, got.Product)
				assert.Zero(t, got.Score)
				assert.Equal(t, 0.6999, got.Rejected.Score)
			},
		},
		"unknown-customer": {
			customerID: "ghost",
			setExpectations: func(store *domain.MockInterestStore, index *domain.MockAdvertisementIndex) {
				store.EXPECT().ListInterests(mock.Anything, "ghost").Return(nil, nil)
			},
			assertResult: func(t *testing.T, got domain.PipelineResult) {
				assert.Equal(t, domain.DefaultVideoURL, got.AdURL)
				assert.False(t, got.PlayAd)
			},
			expectedErr: domain.NewNotFoundErr("no entries found for UserId: ghost"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := domain.NewMockInterestStore(t)
			index := domain.NewMockAdvertisementIndex(t)
			if tt.setExpectations != nil {
				tt.setExpectations(store, index)
			}

			logger := log.New(&strings.Builder{}, "", 0)
			rai := NewRecommendAdImpl(store, NewCandidateCollectorImpl(index, logger), logger)

			got, gotErr := rai.Query(context.Background(), tt.customerID)
			assert.Equal(t, tt.expectedErr, gotErr)
			tt.assertResult(t, got)
		})
	}
}

func TestInitRecommendAd_Initialize(t *testing.T) {
	ira := InitRecommendAd{
		Store:     domain.NewMockInterestStore(t),
		Collector: NewCandidateCollectorImpl(domain.NewMockAdvertisementIndex(t), nil),
		Logger:    log.New(&strings.Builder{}, "", 0),
	}

	ctx, err := ira.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[RecommendAd]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
