// Package astra reads customer interests and searches advertisements through
// the DataStax Astra DB Data API.
package astra

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// DataAPIClient is a thin client for the Astra DB JSON Data API.
type DataAPIClient struct {
	baseURL  string
	token    string
	keyspace string
	http     *http.Client
}

// NewDataAPIClient creates a new client
func NewDataAPIClient(baseURL, token, keyspace string, httpClient *http.Client) DataAPIClient {
	return DataAPIClient{
		baseURL:  baseURL,
		token:    token,
		keyspace: keyspace,
		http:     httpClient,
	}
}

// Find runs a find command against the collection and returns one page of documents.
func (c DataAPIClient) Find(ctx context.Context, collection string, cmd FindCommand) (FindResult, error) {
	if cmd.Filter == nil {
		cmd.Filter = map[string]any{}
	}
	resp, err := c.do(ctx, collection, findRequest{Find: cmd})
	if err != nil {
		return FindResult{}, err
	}
	if resp.Data == nil {
		return FindResult{}, nil
	}
	return *resp.Data, nil
}

// CountDocuments counts the documents of the collection matching filter.
func (c DataAPIClient) CountDocuments(ctx context.Context, collection string, filter map[string]any) (CountResult, error) {
	if filter == nil {
		filter = map[string]any{}
	}
	resp, err := c.do(ctx, collection, countDocumentsRequest{CountDocuments: CountDocumentsCommand{Filter: filter}})
	if err != nil {
		return CountResult{}, err
	}
	if resp.Status == nil {
		return CountResult{}, errors.New("countDocuments response without status")
	}
	return *resp.Status, nil
}

func (c DataAPIClient) do(ctx context.Context, collection string, body any) (commandResponse, error) {
	httpReq, err := c.newPostRequest(ctx, collection, body)
	if err != nil {
		return commandResponse{}, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return commandResponse{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return commandResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return commandResponse{}, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	var out commandResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return commandResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			if e.ErrorCode != "" {
				msgs = append(msgs, e.ErrorCode+": "+e.Message)
				continue
			}
			msgs = append(msgs, e.Message)
		}
		return commandResponse{}, fmt.Errorf("data api error: %s", strings.Join(msgs, "; "))
	}
	return out, nil
}

func (c DataAPIClient) newPostRequest(ctx context.Context, collection string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, "api", "json", "v1", c.keyspace, collection)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Token", c.token)
	return req, nil
}
