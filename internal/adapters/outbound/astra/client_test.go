package astra

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAPIClient_Find(t *testing.T) {
	tests := map[string]struct {
		status       int
		response     string
		expectedBody string
		expected     FindResult
		expectedErr  string
	}{
		"success": {
			status:       http.StatusOK,
			response:     `{"data":{"documents":[{"product":"Boots"}],"nextPageState":"abc"}}`,
			expectedBody: `{"find":{"filter":{"UserId":"cust-1"},"options":{"limit":2}}}`,
			expected: FindResult{
				Documents:     []Document{Document(`{"product":"Boots"}`)},
				NextPageState: common.Ptr("abc"),
			},
		},
		"api-error": {
			status:       http.StatusOK,
			response:     `{"errors":[{"message":"collection does not exist","errorCode":"COLLECTION_NOT_EXIST"}]}`,
			expectedBody: `{"find":{"filter":{"UserId":"cust-1"},"options":{"limit":2}}}`,
			expectedErr:  "data api error: COLLECTION_NOT_EXIST: collection does not exist",
		},
		"non-2xx": {
			status:       http.StatusUnauthorized,
			response:     `unauthorized`,
			expectedBody: `{"find":{"filter":{"UserId":"cust-1"},"options":{"limit":2}}}`,
			expectedErr:  "non-2xx response: 401 Unauthorized: unauthorized",
		},
		"malformed-body": {
			status:       http.StatusOK,
			response:     `{"data":`,
			expectedBody: `{"find":{"filter":{"UserId":"cust-1"},"options":{"limit":2}}}`,
			expectedErr:  "unmarshal response",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/json/v1/ks/userinterests", r.URL.Path)
				assert.Equal(t, "secret-token", r.Header.Get("Token"))
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, tt.expectedBody, string(body))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			client := NewDataAPIClient(srv.URL, "secret-token", "ks", srv.Client())
			got, err := client.Find(context.Background(), "userinterests", FindCommand{
				Filter:  map[string]any{"UserId": "cust-1"},
				Options: &FindOptions{Limit: 2},
			})
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.NextPageState, got.NextPageState)
			require.Len(t, got.Documents, len(tt.expected.Documents))
			for i := range got.Documents {
				assert.JSONEq(t, string(tt.expected.Documents[i]), string(got.Documents[i]))
			}
		})
	}
}

func TestDataAPIClient_CountDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"countDocuments":{"filter":{}}}`, string(body))
		_, _ = w.Write([]byte(`{"status":{"count":42,"moreData":false}}`))
	}))
	defer srv.Close()

	client := NewDataAPIClient(srv.URL, "secret-token", "ks", srv.Client())
	got, err := client.CountDocuments(context.Background(), "userinterests", nil)
	require.NoError(t, err)
	assert.Equal(t, CountResult{Count: 42}, got)
}
