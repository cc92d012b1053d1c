package astra

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataAPIStub answers each request with the next canned response and records the request bodies.
type dataAPIStub struct {
	responses []string
	requests  []map[string]any
}

func (s *dataAPIStub) server(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		assert.NoError(t, json.Unmarshal(body, &req))
		s.requests = append(s.requests, req)

		if len(s.responses) == 0 {
			t.Errorf("unexpected request: %s", string(body))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		resp := s.responses[0]
		s.responses = s.responses[1:]
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInterestStore_ListInterests(t *testing.T) {
	tests := map[string]struct {
		responses     []string
		expected      []domain.InterestRecord
		expectedCalls int
		expectedErr   string
	}{
		"single-page": {
			responses: []string{
				`{"data":{"documents":[
					{"UserId":"cust-1","InterestName":"Hiking","InterestDescription":"Mountain trails","$vector":[1,0]},
					{"UserId":"cust-1","InterestName":"Chess","InterestDescription":"Openings"}
				],"nextPageState":null}}`,
			},
			expected: []domain.InterestRecord{
				{CustomerID: "cust-1", Name: "Hiking", Description: "Mountain trails", Vector: []float64{1, 0}},
				{CustomerID: "cust-1", Name: "Chess", Description: "Openings"},
			},
			expectedCalls: 1,
		},
		"follows-page-state": {
			responses: []string{
				`{"data":{"documents":[{"UserId":"cust-1","InterestName":"Hiking","$vector":[1,0]}],"nextPageState":"page-2"}}`,
				`{"data":{"documents":[{"UserId":"cust-1","InterestName":"Cooking","$vector":[0,1]}]}}`,
			},
			expected: []domain.InterestRecord{
				{CustomerID: "cust-1", Name: "Hiking", Vector: []float64{1, 0}},
				{CustomerID: "cust-1", Name: "Cooking", Vector: []float64{0, 1}},
			},
			expectedCalls: 2,
		},
		"unknown-customer": {
			responses:     []string{`{"data":{"documents":[]}}`},
			expected:      []domain.InterestRecord{},
			expectedCalls: 1,
		},
		"api-error": {
			responses:     []string{`{"errors":[{"message":"boom"}]}`},
			expectedCalls: 1,
			expectedErr:   "find interests: data api error: boom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stub := &dataAPIStub{responses: tt.responses}
			srv := stub.server(t)

			store := NewInterestStore(NewDataAPIClient(srv.URL, "token", "ks", srv.Client()), "userinterests")
			got, err := store.ListInterests(context.Background(), "cust-1")

			assert.Len(t, stub.requests, tt.expectedCalls)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInterestStore_ListInterests_SendsPageState(t *testing.T) {
	stub := &dataAPIStub{responses: []string{
		`{"data":{"documents":[],"nextPageState":"page-2"}}`,
		`{"data":{"documents":[]}}`,
	}}
	srv := stub.server(t)

	store := NewInterestStore(NewDataAPIClient(srv.URL, "token", "ks", srv.Client()), "userinterests")
	_, err := store.ListInterests(context.Background(), "cust-1")
	require.NoError(t, err)

	require.Len(t, stub.requests, 2)
	find := stub.requests[1]["find"].(map[string]any)
	assert.Equal(t, map[string]any{"UserId": "cust-1"}, find["filter"])
	assert.Equal(t, map[string]any{"pageState": "page-2"}, find["options"])
}

func TestInterestStore_RandomCustomerID(t *testing.T) {
	tests := map[string]struct {
		responses    []string
		expected     string
		expectedSkip any
		expectedErr  error
	}{
		"picks-from-batch": {
			responses: []string{
				`{"status":{"count":30}}`,
				`{"data":{"documents":[{"UserId":"cust-3"},{"UserId":"cust-4"}]}}`,
			},
			expected:     "cust-4",
			expectedSkip: float64(1),
		},
		"single-document": {
			responses: []string{
				`{"status":{"count":1}}`,
				`{"data":{"documents":[{"UserId":"cust-1"}]}}`,
			},
			expected: "cust-1",
		},
		"empty-collection": {
			responses: []string{
				`{"status":{"count":0}}`,
			},
			expectedErr: domain.NewNotFoundErr("no customers found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stub := &dataAPIStub{responses: tt.responses}
			srv := stub.server(t)

			store := NewInterestStore(NewDataAPIClient(srv.URL, "token", "ks", srv.Client()), "userinterests")
			store.randIntN = func(n int) int { return min(1, n-1) }

			got, err := store.RandomCustomerID(context.Background())
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)

			if tt.expectedSkip != nil {
				find := stub.requests[1]["find"].(map[string]any)
				options := find["options"].(map[string]any)
				assert.Equal(t, tt.expectedSkip, options["skip"])
				assert.Equal(t, map[string]any{"UserId": float64(1)}, find["sort"])
			}
		})
	}
}

func TestInitStores_Initialize(t *testing.T) {
	tests := map[string]struct {
		init        InitStores
		expectedErr string
	}{
		"configured": {
			init: InitStores{
				HttpClient:               http.DefaultClient,
				Endpoint:                 "https://db.apps.astra.datastax.com",
				Token:                    "AstraCS:token",
				Keyspace:                 "default_keyspace",
				UserInterestsCollection:  "userinterests",
				AdvertisementsCollection: "advertisements",
			},
		},
		"missing-token": {
			init: InitStores{
				HttpClient: http.DefaultClient,
				Endpoint:   "https://db.apps.astra.datastax.com",
			},
			expectedErr: "missing required configuration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.expectedErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}
