package repos_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/stretchr/testify/require"
)

var _ ports.SecretsRepository = (*repos.VaultRepository)(nil)

func newVaultServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/apps/data/svc-inventory", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Vault-Token") != "issued-token" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":["permission denied"]}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"data": map[string]any{"POSTGRES_PASSWORD": "from-vault"},
			},
		})
	})
	mux.HandleFunc("PUT /v1/auth/approle/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body["role_id"] != "role" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":["invalid role"]}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"auth": map[string]any{"client_token": "issued-token"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestVaultRepository(t *testing.T) {
	t.Parallel()

	server := newVaultServer(t)

	repo, err := repos.NewVaultRepository(config.SecretsStorage{
		Address: server.URL,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	login, err := repo.WriteWithContext(t.Context(), "auth/approle/login", map[string]any{
		"role_id":   "role",
		"secret_id": "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, login.Auth)
	require.Equal(t, "issued-token", login.Auth.ClientToken)

	repo.SetToken(login.Auth.ClientToken)

	secret, err := repo.GetSecrets(t.Context(), "apps/data/svc-inventory")
	require.NoError(t, err)

	data, ok := secret.Data["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "from-vault", data["POSTGRES_PASSWORD"])
}

func TestVaultRepository_Forbidden(t *testing.T) {
	t.Parallel()

	server := newVaultServer(t)

	repo, err := repos.NewVaultRepository(config.SecretsStorage{
		Address: server.URL,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	repo.SetToken("wrong")

	_, err = repo.GetSecrets(t.Context(), "apps/data/svc-inventory")
	require.Error(t, err)
}
