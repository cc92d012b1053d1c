package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read on first use and cached for the life of the process.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	mu   sync.Mutex
	data map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "adrecommender").
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get retrieves a configuration value from the Vault secret.
// Non-string values are formatted with fmt.Sprint.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secret(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}

func (vp *VaultProvider) secret(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.data != nil {
		return vp.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}
	vp.data = secret.Data
	return vp.data, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider registers a composite of environment variables and Vault as
// the global config provider. Without VAULT_ADDR only environment variables are used.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"adrecommender"`
}

// Initialize sets up the VaultProvider and registers it in a composite provider as a global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "" || ivp.Server == "-" {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
