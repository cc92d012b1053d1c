package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	tests := map[string]struct {
		input       string
		expected    Backend
		expectedErr bool
	}{
		"postgres": {input: "postgres", expected: Backend_POSTGRES},
		"astra":    {input: "astra", expected: Backend_ASTRA},
		"memory":   {input: "memory", expected: Backend_MEMORY},
		"unknown":  {input: "redis", expectedErr: true},
		"empty":    {input: "", expectedErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStoreInitializers(t *testing.T) {
	assert.Len(t, storeInitializers(Backend_POSTGRES), 2)
	assert.Len(t, storeInitializers(Backend_ASTRA), 1)
	assert.Len(t, storeInitializers(Backend_MEMORY), 1)
}

func TestNewAdRecommenderApp_Initializers(t *testing.T) {
	app := NewAdRecommenderApp(Backend_MEMORY)
	require.NotNil(t, app, "NewAdRecommenderApp should not return nil")
}

func TestNewComparisonApp_Initializers(t *testing.T) {
	app := NewComparisonApp(Backend_MEMORY, &bytes.Buffer{})
	require.NotNil(t, app, "NewComparisonApp should not return nil")
}

func TestInitEnvVars_Initialize(t *testing.T) {
	t.Setenv("COMPARE_CUSTOMER_ID", "")
	init := &InitEnvVars{EnvVars: map[string]string{
		"COMPARE_CUSTOMER_ID": "cust-002",
	}}

	_, err := init.Initialize(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "cust-002", os.Getenv("COMPARE_CUSTOMER_ID"))
}
