package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/usecases"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config oapi-codegen.yaml openapi.yaml

var _ gen.ServerInterface = (*AdRecommenderServer)(nil)

// AdRecommenderServer is the REST API HTTP server for the ad recommender.
type AdRecommenderServer struct {
	Port               int                  `config:"HTTP_PORT" default:"8080"`
	Logger             *log.Logger          `resolve:""`
	RecommendAdUseCase usecases.RecommendAd `resolve:""`
}

// Handler builds the routed and instrumented handler of the server.
func (api AdRecommenderServer) Handler() http.Handler {
	r := chi.NewRouter()

	// Register introspection endpoint for debugging and testing purposes
	r.Get("/introspect", IntrospectHandler)

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.ChiServerOptions{
		BaseRouter: r,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("adrecommender-api"),
		},
		ErrorHandlerFunc: respondParamError,
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the AdRecommenderServer.
func (api AdRecommenderServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AdRecommenderServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AdRecommenderServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AdRecommenderServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks if the AdRecommenderServer is ready by performing a health check.
func (api AdRecommenderServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
