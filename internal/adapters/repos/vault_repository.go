package repos

import (
	"context"
	"fmt"

	"github.com/architeacher/inventory/internal/config"
	"github.com/hashicorp/vault/api"
)

// VaultRepository reads and writes secrets through the Vault logical API.
type VaultRepository struct {
	client *api.Client
}

func NewVaultRepository(cfg config.SecretsStorage) (*VaultRepository, error) {
	vaultConfig := api.DefaultConfig()
	vaultConfig.Address = cfg.Address
	vaultConfig.Timeout = cfg.Timeout
	vaultConfig.MaxRetries = int(cfg.MaxRetries)

	if cfg.TLSSkipVerify {
		if err := vaultConfig.ConfigureTLS(&api.TLSConfig{Insecure: true}); err != nil {
			return nil, fmt.Errorf("configuring vault TLS: %w", err)
		}
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("creating vault client: %w", err)
	}

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	return &VaultRepository{client: client}, nil
}

func (r *VaultRepository) SetToken(v string) {
	r.client.SetToken(v)
}

func (r *VaultRepository) GetSecrets(ctx context.Context, path string) (*api.Secret, error) {
	return r.client.Logical().ReadWithContext(ctx, path)
}

func (r *VaultRepository) WriteWithContext(ctx context.Context, path string, data map[string]any) (*api.Secret, error) {
	return r.client.Logical().WriteWithContext(ctx, path, data)
}
