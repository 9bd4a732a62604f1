package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/architeacher/inventory/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"github.com/hashicorp/vault/api"
	"github.com/kelseyhightower/envconfig"
)

var ErrSecretsStorageDisabled = errors.New("secret storage is not enabled")

func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.App.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.App.CommitSHA = CommitSHA
	}

	return cfg, nil
}

// Loader overlays secrets read from Vault on top of the environment
// configuration.
type Loader struct {
	secretsRepo ports.SecretsRepository
	retryDelay  time.Duration
}

func NewLoader(secretsRepo ports.SecretsRepository) *Loader {
	return &Loader{
		secretsRepo: secretsRepo,
		retryDelay:  time.Second,
	}
}

// Load authenticates against the secrets storage, reads apps/data/<mount>
// and applies the recognised keys to cfg.
func (l *Loader) Load(ctx context.Context, cfg *ServiceConfig) error {
	if !cfg.SecretsStorage.Enabled {
		return ErrSecretsStorageDisabled
	}

	if err := l.authenticate(ctx, cfg.SecretsStorage); err != nil {
		return fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	data, err := l.loadSecrets(ctx, cfg.SecretsStorage)
	if err != nil {
		return fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	for key, value := range data {
		if strValue, ok := value.(string); ok && strValue != "" {
			applySecret(cfg, key, strValue)
		}
	}

	return nil
}

func (l *Loader) authenticate(ctx context.Context, storage SecretsStorage) error {
	switch strings.ToLower(storage.AuthMethod) {
	case "token":
		if storage.Token == "" {
			return fmt.Errorf("token is required for token auth method")
		}

		l.secretsRepo.SetToken(storage.Token)

		return nil

	case "approle":
		if storage.RoleID == "" || storage.SecretID == "" {
			return fmt.Errorf("role_id and secret_id are required for approle auth method")
		}

		data := map[string]any{
			"role_id":   storage.RoleID,
			"secret_id": storage.SecretID,
		}

		resp, err := l.secretsRepo.WriteWithContext(ctx, "auth/approle/login", data)
		if err != nil {
			return fmt.Errorf("failed to authenticate via approle: %w", err)
		}

		if resp == nil || resp.Auth == nil {
			return fmt.Errorf("no auth info returned from Vault")
		}

		l.secretsRepo.SetToken(resp.Auth.ClientToken)

		return nil

	default:
		return fmt.Errorf("unsupported auth method: %s", storage.AuthMethod)
	}
}

func (l *Loader) loadSecrets(ctx context.Context, storage SecretsStorage) (map[string]any, error) {
	path := fmt.Sprintf("apps/data/%s", storage.MountPath)

	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	secret, err := backoff.Retry(
		ctx,
		func() (*api.Secret, error) {
			return l.secretsRepo.GetSecrets(ctx, path)
		},
		backoff.WithBackOff(backoff.NewConstantBackOff(l.retryDelay)),
		backoff.WithMaxTries(storage.MaxRetries+1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read from path %s after %d retries: %w", path, storage.MaxRetries, err)
	}

	if secret == nil || secret.Data == nil {
		return nil, nil
	}

	result, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid secret format at path %s, missing 'data' key", path)
	}

	return result, nil
}

func applySecret(cfg *ServiceConfig, key, value string) {
	switch key {
	case "POSTGRES_USERNAME":
		cfg.Database.Username = value
	case "POSTGRES_PASSWORD":
		cfg.Database.Password = value
	}
}
