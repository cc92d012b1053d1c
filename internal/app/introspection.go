package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys were read and whether
// their default value was used.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect logs the configuration accesses of the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, c := range r.Configs {
		logger.Printf("ReportLoggerIntrospector: config %s (default used: %t)", c.Key, c.UsedDefault)
	}
	return nil
}
