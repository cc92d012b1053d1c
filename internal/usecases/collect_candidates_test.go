package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCandidateCollectorImpl_Collect(t *testing.T) {
	vectors := []domain.InterestVector{
		{Vector: []float64{1, 0}, Name: "Hiking", Description: "Mountain trails"},
		{Vector: []float64{0, 1}, Name: "Cooking", Description: "Italian food"},
	}

	tests := map[string]struct {
		vectors         []domain.InterestVector
		setExpectations func(index *domain.MockAdvertisementIndex)
		expectedPool    domain.CandidatePool
		expectedErr     error
	}{
		"candidates-tagged-with-vector-index": {
			vectors: vectors,
			setExpectations: func(index *domain.MockAdvertisementIndex) {
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Boots", VideoLink: "https://v/?v=boots", Similarity: 0.9},
				}, nil)
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{0, 1}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Pasta", VideoLink: "https://v/?v=pasta", Similarity: 0.8},
				}, nil)
			},
			expectedPool: domain.CandidatePool{
				{URL: "https://v/?v=boots&autoplay=1&mute=1", Product: "Boots", Score: 0.9, VectorIndex: 0},
				{URL: "https://v/?v=pasta&autoplay=1&mute=1", Product: "Pasta", Score: 0.8, VectorIndex: 1},
			},
		},
		"first-occurrence-of-product-wins-within-query": {
			vectors: vectors[:1],
			setExpectations: func(index *domain.MockAdvertisementIndex) {
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Boots", VideoLink: "https://v/?v=boots-1", Similarity: 0.9},
					{Product: "Boots", VideoLink: "https://v/?v=boots-2", Similarity: 0.7},
					{Product: "Tent", VideoLink: "https://v/?v=tent", Similarity: 0.6},
				}, nil)
			},
			expectedPool: domain.CandidatePool{
				{URL: "https://v/?v=boots-1&autoplay=1&mute=1", Product: "Boots", Score: 0.9, VectorIndex: 0},
				{URL: "https://v/?v=tent&autoplay=1&mute=1", Product: "Tent", Score: 0.6, VectorIndex: 0},
			},
		},
		"matches-without-link-are-discarded": {
			vectors: vectors[:1],
			setExpectations: func(index *domain.MockAdvertisementIndex) {
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Boots", VideoLink: "", Similarity: 0.95},
					{Product: "Boots", VideoLink: "https://v/?v=boots", Similarity: 0.9},
				}, nil)
			},
			expectedPool: domain.CandidatePool{
				{URL: "https://v/?v=boots&autoplay=1&mute=1", Product: "Boots", Score: 0.9, VectorIndex: 0},
			},
		},
		"failing-query-is-skipped": {
			vectors: vectors,
			setExpectations: func(index *domain.MockAdvertisementIndex) {
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return(nil, errors.New("timeout"))
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{0, 1}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Pasta", VideoLink: "https://v/?v=pasta", Similarity: 0.8},
				}, nil)
			},
			expectedPool: domain.CandidatePool{
				{URL: "https://v/?v=pasta&autoplay=1&mute=1", Product: "Pasta", Score: 0.8, VectorIndex: 1},
			},
		},
		"empty-result-does-not-stop-later-vectors": {
			vectors: vectors,
			setExpectations: func(index *domain.MockAdvertisementIndex) {
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return([]domain.AdvertisementMatch{}, nil).Once()
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{0, 1}, domain.SearchLimit).Return([]domain.AdvertisementMatch{
					{Product: "Pasta", VideoLink: "https://v/?v=pasta", Similarity: 0.8},
				}, nil).Once()
			},
			expectedPool: domain.CandidatePool{
				{URL: "https://v/?v=pasta&autoplay=1&mute=1", Product: "Pasta", Score: 0.8, VectorIndex: 1},
			},
		},
		"empty-pool": {
			vectors: vectors,
			setExpectations: func(index *domain.MockAdvertisementIndex) {
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).Return(nil, errors.New("timeout"))
				index.EXPECT().SearchAdvertisements(mock.Anything, []float64{0, 1}, domain.SearchLimit).Return([]domain.AdvertisementMatch{}, nil)
			},
			expectedErr: domain.NewNotFoundErr("no advertisements found across all vectors"),
		},
		"no-vectors": {
			vectors:     nil,
			expectedErr: domain.NewNotFoundErr("no advertisements found across all vectors"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			index := domain.NewMockAdvertisementIndex(t)
			if tt.setExpectations != nil {
				tt.setExpectations(index)
			}

			cc := NewCandidateCollectorImpl(index, log.New(&strings.Builder{}, "", 0))

			got, gotErr := cc.Collect(context.Background(), tt.vectors)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedPool, got)
		})
	}
}

func TestCandidateCollectorImpl_Collect_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	index := domain.NewMockAdvertisementIndex(t)
	index.EXPECT().SearchAdvertisements(mock.Anything, []float64{1, 0}, domain.SearchLimit).
		RunAndReturn(func(ctx context.Context, _ []float64, _ int) ([]domain.AdvertisementMatch, error) {
			cancel()
			return nil, fmt.Errorf("search advertisements: %w", ctx.Err())
		})

	cc := NewCandidateCollectorImpl(index, log.New(&strings.Builder{}, "", 0))
	got, err := cc.Collect(ctx, []domain.InterestVector{
		{Vector: []float64{1, 0}},
		{Vector: []float64{0, 1}},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestCandidateCollectorImpl_Collect_LogsTopCandidates(t *testing.T) {
	matches := make([]domain.AdvertisementMatch, 0, 7)
	for i := range 7 {
		matches = append(matches, domain.AdvertisementMatch{
			Product:    fmt.Sprintf("Product %d", i),
			VideoLink:  fmt.Sprintf("https://v/?v=%d", i),
			Similarity: 0.9 - float64(i)/100,
		})
	}

	index := domain.NewMockAdvertisementIndex(t)
	index.EXPECT().SearchAdvertisements(mock.Anything, mock.Anything, domain.SearchLimit).Return(matches, nil)

	buf := &strings.Builder{}
	cc := NewCandidateCollectorImpl(index, log.New(buf, "", 0))
	got, err := cc.Collect(context.Background(), []domain.InterestVector{{Vector: []float64{1}, Name: "Hiking"}})

	assert.NoError(t, err)
	assert.Len(t, got, 7)
	assert.Contains(t, buf.String(), "Product: Product 4")
	assert.NotContains(t, buf.String(), "Product: Product 5")
}

func TestInitCandidateCollector_Initialize(t *testing.T) {
	icc := InitCandidateCollector{
		Index:  domain.NewMockAdvertisementIndex(t),
		Logger: log.New(&strings.Builder{}, "", 0),
	}

	ctx, err := icc.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CandidateCollector]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
