package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/mocks"
	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/require"
)

func vaultConfig(method string) *config.ServiceConfig {
	return &config.ServiceConfig{
		SecretsStorage: config.SecretsStorage{
			Enabled:    true,
			AuthMethod: method,
			Token:      "root-token",
			RoleID:     "role",
			SecretID:   "secret",
			MountPath:  "svc-inventory",
			Timeout:    time.Second,
			MaxRetries: 2,
		},
		Database: config.Database{Username: "postgres", Password: ""},
	}
}

func secretWith(data map[string]any) *api.Secret {
	return &api.Secret{Data: map[string]any{"data": data}}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		cfg          *config.ServiceConfig
		setupRepo    func(*mocks.FakeSecretsRepository)
		wantErr      bool
		wantToken    string
		wantUser     string
		wantPassword string
		wantCalls    int
	}{
		{
			name: "token auth applies database credentials",
			cfg:  vaultConfig("token"),
			setupRepo: func(fake *mocks.FakeSecretsRepository) {
				fake.GetSecretsReturns(secretWith(map[string]any{
					"POSTGRES_USERNAME": "inventory",
					"POSTGRES_PASSWORD": "s3cret",
					"UNRELATED":         "ignored",
				}), nil)
			},
			wantToken:    "root-token",
			wantUser:     "inventory",
			wantPassword: "s3cret",
			wantCalls:    1,
		},
		{
			name: "approle auth uses the issued client token",
			cfg:  vaultConfig("approle"),
			setupRepo: func(fake *mocks.FakeSecretsRepository) {
				fake.WriteWithContextStub = func(_ context.Context, path string, data map[string]any) (*api.Secret, error) {
					if path != "auth/approle/login" || data["role_id"] != "role" {
						return nil, errors.New("unexpected login")
					}

					return &api.Secret{Auth: &api.SecretAuth{ClientToken: "approle-token"}}, nil
				}
				fake.GetSecretsReturns(secretWith(map[string]any{"POSTGRES_PASSWORD": "from-approle"}), nil)
			},
			wantToken:    "approle-token",
			wantUser:     "postgres",
			wantPassword: "from-approle",
			wantCalls:    1,
		},
		{
			name: "transient read failures are retried",
			cfg:  vaultConfig("token"),
			setupRepo: func(fake *mocks.FakeSecretsRepository) {
				fake.GetSecretsReturnsOnCall(0, nil, errors.New("vault sealed"))
				fake.GetSecretsReturnsOnCall(1, nil, errors.New("vault sealed"))
				fake.GetSecretsReturns(secretWith(map[string]any{"POSTGRES_PASSWORD": "late"}), nil)
			},
			wantToken:    "root-token",
			wantUser:     "postgres",
			wantPassword: "late",
			wantCalls:    3,
		},
		{
			name: "read keeps failing",
			cfg:  vaultConfig("token"),
			setupRepo: func(fake *mocks.FakeSecretsRepository) {
				fake.GetSecretsReturns(nil, errors.New("vault sealed"))
			},
			wantErr: true,
		},
		{
			name:    "unsupported auth method",
			cfg:     vaultConfig("kubernetes"),
			wantErr: true,
		},
		{
			name: "malformed secret payload",
			cfg:  vaultConfig("token"),
			setupRepo: func(fake *mocks.FakeSecretsRepository) {
				fake.GetSecretsReturns(&api.Secret{Data: map[string]any{"other": 1}}, nil)
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &mocks.FakeSecretsRepository{}
			if tc.setupRepo != nil {
				tc.setupRepo(repo)
			}

			loader := config.NewLoader(repo)
			config.SetRetryDelay(loader, time.Millisecond)

			err := loader.Load(t.Context(), tc.cfg)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantToken, repo.SetTokenArgsForCall(repo.SetTokenCallCount()-1))
			require.Equal(t, tc.wantUser, tc.cfg.Database.Username)
			require.Equal(t, tc.wantPassword, tc.cfg.Database.Password)
			require.Equal(t, tc.wantCalls, repo.GetSecretsCallCount())

			_, path := repo.GetSecretsArgsForCall(0)
			require.Equal(t, "apps/data/svc-inventory", path)
		})
	}
}

func TestLoader_LoadDisabled(t *testing.T) {
	t.Parallel()

	cfg := vaultConfig("token")
	cfg.SecretsStorage.Enabled = false

	repo := &mocks.FakeSecretsRepository{}

	err := config.NewLoader(repo).Load(t.Context(), cfg)
	require.ErrorIs(t, err, config.ErrSecretsStorageDisabled)
	require.Zero(t, repo.GetSecretsCallCount())
}
