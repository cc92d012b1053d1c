package app

import (
	"context"
	"os"
)

// InitEnvVars exports values, typically taken from command line flags, as
// environment variables before the configuration is read.
type InitEnvVars struct {
	EnvVars map[string]string
}

// Initialize sets every non-empty value.
func (i *InitEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.EnvVars {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}
