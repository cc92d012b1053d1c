package astra

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/resilience"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitStores registers the Astra interest store and the raw advertisement index.
type InitStores struct {
	HttpClient               *http.Client `resolve:""`
	Endpoint                 string       `config:"ASTRA_DB_ENDPOINT"`
	Token                    string       `config:"ASTRA_DB_TOKEN"`
	Keyspace                 string       `config:"ASTRA_DB_KEYSPACE" default:"default_keyspace"`
	UserInterestsCollection  string       `config:"USERINTERESTS_COLLECTION" default:"userinterests"`
	AdvertisementsCollection string       `config:"ADVERTISEMENTS_COLLECTION" default:"advertisements"`
}

// Initialize registers the domain.InterestStore and the backend advertisement index
// in the dependency container.
func (i InitStores) Initialize(ctx context.Context) (context.Context, error) {
	if i.Endpoint == "" || i.Token == "" {
		return ctx, errors.New("missing required configuration: ASTRA_DB_ENDPOINT or ASTRA_DB_TOKEN")
	}

	client := NewDataAPIClient(i.Endpoint, i.Token, i.Keyspace, i.HttpClient)
	depend.Register[domain.InterestStore](NewInterestStore(client, i.UserInterestsCollection))
	depend.RegisterNamed[domain.AdvertisementIndex](NewAdvertisementIndex(client, i.AdvertisementsCollection), resilience.BackendIndexName)
	return ctx, nil
}
