package memory

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/resilience"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitStores loads the catalog and registers it as the interest store and the
// raw advertisement index.
type InitStores struct {
	Logger      *log.Logger `resolve:""`
	CatalogPath string      `config:"MEMORY_CATALOG_PATH" default:"-"`
}

// Initialize registers the catalog in the dependency container.
func (i InitStores) Initialize(ctx context.Context) (context.Context, error) {
	path := i.CatalogPath
	if path == "-" {
		path = ""
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		return ctx, err
	}
	if path == "" {
		path = "embedded demo catalog"
	}
	i.Logger.Printf("InitStores: loaded %d interests and %d advertisements from %s",
		len(catalog.Interests), len(catalog.Advertisements), path)

	depend.Register[domain.InterestStore](catalog)
	depend.RegisterNamed[domain.AdvertisementIndex](catalog, resilience.BackendIndexName)
	return ctx, nil
}
