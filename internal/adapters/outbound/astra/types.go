package astra

import json "github.com/goccy/go-json"

// Document is a raw Data API document.
type Document = json.RawMessage

// FindOptions holds the options of a find command.
type FindOptions struct {
	Limit             int    `json:"limit,omitempty"`
	Skip              int    `json:"skip,omitempty"`
	IncludeSimilarity bool   `json:"includeSimilarity,omitempty"`
	PageState         string `json:"pageState,omitempty"`
}

// FindCommand is the body of a Data API find command.
type FindCommand struct {
	Filter     map[string]any `json:"filter"`
	Sort       map[string]any `json:"sort,omitempty"`
	Projection map[string]any `json:"projection,omitempty"`
	Options    *FindOptions   `json:"options,omitempty"`
}

// CountDocumentsCommand is the body of a Data API countDocuments command.
type CountDocumentsCommand struct {
	Filter map[string]any `json:"filter"`
}

type findRequest struct {
	Find FindCommand `json:"find"`
}

type countDocumentsRequest struct {
	CountDocuments CountDocumentsCommand `json:"countDocuments"`
}

// FindResult is one page of find results.
type FindResult struct {
	Documents     []Document `json:"documents"`
	NextPageState *string    `json:"nextPageState"`
}

// CountResult is the outcome of a countDocuments command. MoreData is set when
// the count hit the server-side upper bound.
type CountResult struct {
	Count    int  `json:"count"`
	MoreData bool `json:"moreData"`
}

// APIError is an error reported in the body of a Data API response.
type APIError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}

type commandResponse struct {
	Data   *FindResult  `json:"data,omitempty"`
	Status *CountResult `json:"status,omitempty"`
	Errors []APIError   `json:"errors,omitempty"`
}

// interestDocument is the stored shape of a user interest.
type interestDocument struct {
	UserID              string    `json:"UserId"`
	InterestName        string    `json:"InterestName"`
	InterestDescription string    `json:"InterestDescription"`
	Vector              []float64 `json:"$vector"`
}

// advertisementDocument is the projected shape of an advertisement search hit.
type advertisementDocument struct {
	Product    string  `json:"product"`
	VideoLink  string  `json:"video_link"`
	Similarity float64 `json:"$similarity"`
}
