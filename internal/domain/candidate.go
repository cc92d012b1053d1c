package domain

import (
	"fmt"
	"sort"
)

// ShortlistSize is the maximum number of recommendations in a shortlist.
const ShortlistSize = 5

// Candidate is an advertisement match produced by the query of one interest vector.
type Candidate struct {
	URL         string
	Product     string
	Score       float64
	VectorIndex int
}

// Recommendation is the externally visible projection of a Candidate.
type Recommendation struct {
	URL     string
	Product string
	Score   float64
}

// Recommendation projects the candidate, dropping the originating vector index.
func (c Candidate) Recommendation() Recommendation {
	return Recommendation{
		URL:     c.URL,
		Product: c.Product,
		Score:   c.Score,
	}
}

// CandidatePool accumulates candidates across all queries of one pipeline run.
type CandidatePool []Candidate

// Selection is the outcome of ranking a candidate pool.
type Selection struct {
	Top       Candidate
	Shortlist []Recommendation
}

// outranks reports whether a should be placed before b: higher score first,
// then the earlier vector.
func outranks(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.VectorIndex < b.VectorIndex
}

// RankAndDedup deduplicates the pool by product, keeping the best-ranked
// instance of each, sorts the survivors and builds the url-unique shortlist.
//
// The pool must not be empty.
func RankAndDedup(pool CandidatePool) Selection {
	if len(pool) == 0 {
		panic("domain: RankAndDedup called with an empty candidate pool")
	}

	best := make(map[string]int, len(pool))
	deduped := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		i, ok := best[c.Product]
		if !ok {
			best[c.Product] = len(deduped)
			deduped = append(deduped, c)
			continue
		}
		if outranks(c, deduped[i]) {
			deduped[i] = c
		}
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return outranks(deduped[i], deduped[j])
	})

	shortlist := make([]Recommendation, 0, ShortlistSize)
	seenURLs := make(map[string]struct{}, ShortlistSize)
	for _, c := range deduped {
		if len(shortlist) == ShortlistSize {
			break
		}
		if _, ok := seenURLs[c.URL]; ok {
			continue
		}
		seenURLs[c.URL] = struct{}{}
		shortlist = append(shortlist, c.Recommendation())
	}

	return Selection{
		Top:       deduped[0],
		Shortlist: shortlist,
	}
}

// String renders the candidate the way it is written to the logs.
func (c Candidate) String() string {
	return fmt.Sprintf("URL: %s, Product: %s, Score: %v", c.URL, c.Product, c.Score)
}
