package app

import (
	"fmt"
	"io"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/inbound/cli"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/astra"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/outbound/resilience"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/usecases"
)

// Backend names the vector store that serves interests and advertisements.
type Backend string

const (
	Backend_POSTGRES Backend = "postgres"
	Backend_ASTRA    Backend = "astra"
	Backend_MEMORY   Backend = "memory"
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case Backend_POSTGRES, Backend_ASTRA, Backend_MEMORY:
		return b, nil
	}
	return "", fmt.Errorf("unknown backend %q: expected postgres, astra or memory", s)
}

func storeInitializers(backend Backend) []symbiont.Initializer {
	switch backend {
	case Backend_ASTRA:
		return []symbiont.Initializer{&astra.InitStores{}}
	case Backend_MEMORY:
		return []symbiont.Initializer{&memory.InitStores{}}
	default:
		return []symbiont.Initializer{&postgres.InitDB{}, &postgres.InitStores{}}
	}
}

// newRecommenderApp wires the shared infrastructure and use cases for the given backend.
func newRecommenderApp(backend Backend, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
		).
		Initialize(storeInitializers(backend)...).
		Initialize(
			&resilience.InitBreakerIndex{},
			&usecases.InitCandidateCollector{},
			&usecases.InitRecommendAd{},
			&usecases.InitCompareApproaches{},
		)
}

// NewAdRecommenderApp creates the application that hosts the REST API.
func NewAdRecommenderApp(backend Backend, initializers ...symbiont.Initializer) *symbiont.App {
	return newRecommenderApp(backend, initializers...).
		Host(
			&http.AdRecommenderServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewComparisonApp creates the application that prints the approach comparison to out and exits.
func NewComparisonApp(backend Backend, out io.Writer, initializers ...symbiont.Initializer) *symbiont.App {
	return newRecommenderApp(backend, initializers...).
		Host(
			&cli.ComparisonReport{Out: out},
		)
}
