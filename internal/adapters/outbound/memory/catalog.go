// Package memory serves customer interests and advertisements from a YAML
// catalog held in memory. It backs local runs and demos without a vector database.
package memory

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/common"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// InterestEntry is one customer interest of the catalog.
type InterestEntry struct {
	UserID              string    `yaml:"user_id"`
	InterestName        string    `yaml:"interest_name"`
	InterestDescription string    `yaml:"interest_description"`
	Vector              []float64 `yaml:"vector"`
}

// AdvertisementEntry is one advertisement of the catalog.
type AdvertisementEntry struct {
	Product   string    `yaml:"product"`
	VideoLink string    `yaml:"video_link"`
	Vector    []float64 `yaml:"vector"`
}

// Catalog implements both domain.InterestStore and domain.AdvertisementIndex.
// It is read-only after loading and safe for concurrent use.
type Catalog struct {
	Interests      []InterestEntry      `yaml:"interests"`
	Advertisements []AdvertisementEntry `yaml:"advertisements"`

	customerIDs []string
	randIntN    func(n int) int
}

// LoadCatalog reads a catalog from path, or the embedded demo catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DecodeCatalog(bytes.NewReader(defaultCatalog))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close() //nolint:errcheck

	return DecodeCatalog(file)
}

// DecodeCatalog decodes a YAML catalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c.randIntN = rand.IntN

	seen := map[string]struct{}{}
	for _, e := range c.Interests {
		if _, ok := seen[e.UserID]; ok || e.UserID == "" {
			continue
		}
		seen[e.UserID] = struct{}{}
		c.customerIDs = append(c.customerIDs, e.UserID)
	}
	return c, nil
}

// ListInterests returns the customer's catalog entries in file order.
func (c *Catalog) ListInterests(ctx context.Context, customerID string) ([]domain.InterestRecord, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("customer_id", customerID),
	))
	defer span.End()

	records := []domain.InterestRecord{}
	for _, e := range c.Interests {
		if e.UserID != customerID {
			continue
		}
		records = append(records, domain.InterestRecord{
			CustomerID:  e.UserID,
			Name:        e.InterestName,
			Description: e.InterestDescription,
			Vector:      e.Vector,
		})
	}
	telemetry.RecordErrorAndStatus(span, nil)
	return records, nil
}

// RandomCustomerID picks one of the catalog's customers.
func (c *Catalog) RandomCustomerID(ctx context.Context) (string, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	if len(c.customerIDs) == 0 {
		err := domain.NewNotFoundErr("no customers found")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	return c.customerIDs[c.randIntN(len(c.customerIDs))], nil
}

// SearchAdvertisements ranks every advertisement by (1 + cos) / 2 against vector.
// Advertisements whose vector has another dimensionality are skipped.
func (c *Catalog) SearchAdvertisements(ctx context.Context, vector []float64, limit int) ([]domain.AdvertisementMatch, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	if limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	matches := make([]domain.AdvertisementMatch, 0, len(c.Advertisements))
	for _, ad := range c.Advertisements {
		score, ok := common.NormalizedSimilarity(vector, ad.Vector)
		if !ok {
			continue
		}
		matches = append(matches, domain.AdvertisementMatch{
			Product:    ad.Product,
			VideoLink:  ad.VideoLink,
			Similarity: score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	telemetry.RecordErrorAndStatus(span, nil)
	return matches, nil
}
