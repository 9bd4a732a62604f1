//go:build integration

package itest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	inboundhttp "github.com/architeacher/inventory/internal/adapters/inbound/http"
	"github.com/architeacher/inventory/internal/adapters/repos"
	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/internal/domain/model"
	infraPostgres "github.com/architeacher/inventory/internal/infrastructure/postgres"
	"github.com/architeacher/inventory/internal/services"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics/noop"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const (
	postgresImage    = "postgres:18-alpine"
	postgresDatabase = "inventory_test"
	postgresUsername = "test"
	postgresPassword = "test"
)

type InventoryIntegrationTestSuite struct {
	suite.Suite
	suiteCtx    context.Context
	suiteCancel context.CancelFunc
	container   *postgres.PostgresContainer
	pool        *pgxpool.Pool
	devices     *repos.DevicesRepository
	service     *services.InventoryService
	server      *httptest.Server
}

func TestInventoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	suite.Run(t, new(InventoryIntegrationTestSuite))
}

func (s *InventoryIntegrationTestSuite) SetupSuite() {
	s.suiteCtx, s.suiteCancel = context.WithTimeout(context.Background(), 5*time.Minute)

	container, err := postgres.Run(s.suiteCtx,
		postgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUsername),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.suiteCtx, "sslmode=disable")
	s.Require().NoError(err)

	pool, err := pgxpool.New(s.suiteCtx, connStr)
	s.Require().NoError(err)
	s.pool = pool

	s.Require().NoError(infraPostgres.EnsureSchema(s.suiteCtx, s.pool))

	log := logger.NewTestLogger()
	storePool := repos.NewGuardedPool(s.pool, nil)
	scanner := repos.NewPgxScanner()

	s.devices = repos.NewDevicesRepository(storePool, scanner, log)
	s.service = services.NewInventoryService(
		repos.NewAPIUsersRepository(storePool, scanner, log),
		repos.NewLocationsRepository(storePool, scanner, log),
		s.devices,
	)

	cfg := &config.ServiceConfig{}
	cfg.App.ServiceName = "svc-inventory"
	cfg.HTTPServer.RequestTimeout = 10 * time.Second

	tracerProvider := tracenoop.NewTracerProvider()
	app := usecases.NewApplication(s.service, s.devices, log, noop.NewMetricsClient(), tracerProvider)

	s.server = httptest.NewServer(inboundhttp.NewRouter(inboundhttp.RouterConfig{
		App:            app,
		Logger:         log,
		MetricsClient:  noop.NewMetricsClient(),
		TracerProvider: tracerProvider,
		Config:         cfg,
	}))
}

func (s *InventoryIntegrationTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}

	if s.pool != nil {
		s.pool.Close()
	}

	if s.container != nil {
		_ = s.container.Terminate(s.suiteCtx)
	}

	if s.suiteCancel != nil {
		s.suiteCancel()
	}
}

func (s *InventoryIntegrationTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(), "TRUNCATE TABLE device, location, api_user RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
}

func (s *InventoryIntegrationTestSuite) call(method, path, body string) (int, map[string]any) {
	req, err := http.NewRequestWithContext(s.T().Context(), method, s.server.URL+path, strings.NewReader(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)

	defer func() { _ = resp.Body.Close() }()

	var payload map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

	return resp.StatusCode, payload
}

func (s *InventoryIntegrationTestSuite) TestSchemaIsIdempotent() {
	s.Require().NoError(infraPostgres.EnsureSchema(s.T().Context(), s.pool))
}

func (s *InventoryIntegrationTestSuite) TestDeviceLifecycle() {
	status, location := s.call(http.MethodPost, "/locations", `{"name":"Lab"}`)
	s.Require().Equal(http.StatusCreated, status)

	status, user := s.call(http.MethodPost, "/api_users", `{"name":"ann","email":"a@x.io","password":"p"}`)
	s.Require().Equal(http.StatusCreated, status)

	status, created := s.call(http.MethodPost, "/devices",
		`{"name":"d1","type":"sensor","login":"l","password":"pw","location":1,"api_user":1}`)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().Equal(float64(1), location["id"])
	s.Require().Equal(float64(1), user["id"])
	s.Require().Equal(float64(1), created["id"])

	status, device := s.call(http.MethodGet, "/devices/1", "")
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal(map[string]any{
		"id":       float64(1),
		"name":     "d1",
		"type":     "sensor",
		"login":    "l",
		"password": "pw",
		"location": float64(1),
		"api_user": float64(1),
	}, device)

	status, updated := s.call(http.MethodPut, "/devices/1", `{"name":"d1-renamed"}`)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal("d1-renamed", updated["name"])
	s.Require().Equal("pw", updated["password"])

	status, deleted := s.call(http.MethodDelete, "/devices/1", "")
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal("deleted", deleted["status"])

	status, missing := s.call(http.MethodGet, "/devices/1", "")
	s.Require().Equal(http.StatusNotFound, status)
	s.Require().Equal("Device not found", missing["error"])
}

func (s *InventoryIntegrationTestSuite) TestMissingReferenceIsRejected() {
	status, _ := s.call(http.MethodPost, "/api_users", `{"name":"ann","email":"a@x.io","password":"p"}`)
	s.Require().Equal(http.StatusCreated, status)

	status, body := s.call(http.MethodPost, "/devices",
		`{"name":"d1","type":"sensor","login":"l","password":"pw","location":42,"api_user":1}`)
	s.Require().Equal(http.StatusUnprocessableEntity, status)
	s.Require().Equal("location 42 not found", body["error"])

	var count int
	s.Require().NoError(s.pool.QueryRow(s.T().Context(), "SELECT count(*) FROM device").Scan(&count))
	s.Require().Zero(count)
}

func (s *InventoryIntegrationTestSuite) TestForeignKeyGuard() {
	ctx := s.T().Context()

	location, err := s.service.CreateLocation(ctx, "Lab")
	s.Require().NoError(err)

	// Bypasses reference resolution so the store constraint answers.
	err = s.devices.Create(ctx, model.NewDevice("d1", "sensor", "l", "pw", location.ID, 404))

	var referenceErr *model.ReferenceNotFoundError
	s.Require().True(errors.As(err, &referenceErr))
	s.Require().Equal(model.ReferenceAPIUser, referenceErr.Reference)
}

func (s *InventoryIntegrationTestSuite) TestDuplicateEmail() {
	ctx := s.T().Context()

	_, err := s.service.CreateAPIUser(ctx, "ann", "a@x.io", "p")
	s.Require().NoError(err)

	_, err = s.service.CreateAPIUser(ctx, "ann2", "a@x.io", "p2")
	s.Require().ErrorIs(err, model.ErrDuplicateEmail)
}

func (s *InventoryIntegrationTestSuite) TestCascadeDelete() {
	ctx := s.T().Context()

	location, err := s.service.CreateLocation(ctx, "Lab")
	s.Require().NoError(err)

	user, err := s.service.CreateAPIUser(ctx, "ann", "a@x.io", "p")
	s.Require().NoError(err)

	device, err := s.service.CreateDevice(ctx, model.NewDevice("d1", "sensor", "l", "pw", location.ID, user.ID))
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteLocation(ctx, location.ID))

	_, err = s.service.GetDevice(ctx, device.ID)
	s.Require().ErrorIs(err, model.ErrDeviceNotFound)

	other, err := s.service.CreateLocation(ctx, "Roof")
	s.Require().NoError(err)

	device, err = s.service.CreateDevice(ctx, model.NewDevice("d2", "sensor", "l", "pw", other.ID, user.ID))
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteAPIUser(ctx, user.ID))

	_, err = s.service.GetDevice(ctx, device.ID)
	s.Require().ErrorIs(err, model.ErrDeviceNotFound)
}
