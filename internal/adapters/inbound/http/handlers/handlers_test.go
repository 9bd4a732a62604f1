package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/architeacher/inventory/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/mocks"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics/noop"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

type testCase struct {
	name           string
	method         string
	path           string
	body           string
	setupSvc       func(*mocks.FakeInventoryService)
	expectedStatus int
	expectedBody   string
	assertSvc      func(*testing.T, *mocks.FakeInventoryService)
}

// newFakeService answers creates with id 1 and reports every fetched,
// updated or deleted entity as missing.
func newFakeService() *mocks.FakeInventoryService {
	fake := &mocks.FakeInventoryService{}

	fake.CreateAPIUserStub = func(_ context.Context, name, email, password string) (*model.APIUser, error) {
		user := model.NewAPIUser(name, email, password)
		user.ID = 1

		return user, nil
	}
	fake.CreateLocationStub = func(_ context.Context, name string) (*model.Location, error) {
		return &model.Location{ID: 1, Name: name}, nil
	}
	fake.CreateDeviceStub = func(_ context.Context, device *model.Device) (*model.Device, error) {
		device.ID = 1

		return device, nil
	}

	fake.GetAPIUserReturns(nil, model.ErrAPIUserNotFound)
	fake.UpdateAPIUserReturns(nil, model.ErrAPIUserNotFound)
	fake.DeleteAPIUserReturns(model.ErrAPIUserNotFound)
	fake.GetLocationReturns(nil, model.ErrLocationNotFound)
	fake.UpdateLocationReturns(nil, model.ErrLocationNotFound)
	fake.DeleteLocationReturns(model.ErrLocationNotFound)
	fake.GetDeviceReturns(nil, model.ErrDeviceNotFound)
	fake.UpdateDeviceReturns(nil, model.ErrDeviceNotFound)
	fake.DeleteDeviceReturns(model.ErrDeviceNotFound)

	return fake
}

func serviceNotCalled(t *testing.T, fake *mocks.FakeInventoryService) {
	t.Helper()

	require.Empty(t, fake.Invocations())
}

func newTestRouter(svc ports.InventoryService, pinger ports.DatabaseHealthChecker) http.Handler {
	log := logger.NewTestLogger()
	app := usecases.NewApplication(svc, pinger, log, noop.NewMetricsClient(), tracenoop.NewTracerProvider())
	handler := handlers.NewHandler(app, log)

	router := chi.NewRouter()
	router.Get("/livez", handler.Liveness)
	router.Get("/readyz", handler.Readiness)
	router.Post("/locations", handler.CreateLocation)
	router.Get("/locations/{id}", handler.GetLocation)
	router.Post("/api_users", handler.CreateAPIUser)
	router.Get("/api_users/{id}", handler.GetAPIUser)
	router.Post("/devices", handler.CreateDevice)
	router.Get("/devices/{id}", handler.GetDevice)
	router.Put("/devices/{id}", handler.UpdateDevice)
	router.Delete("/devices/{id}", handler.DeleteDevice)

	return router
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newFakeService()
			if tc.setupSvc != nil {
				tc.setupSvc(svc)
			}

			router := newTestRouter(svc, &mocks.FakeDatabaseHealthChecker{})

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code, rec.Body.String())
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.expectedBody != "" {
				require.JSONEq(t, tc.expectedBody, rec.Body.String())
			}

			if tc.assertSvc != nil {
				tc.assertSvc(t, svc)
			}
		})
	}
}

func storedDevice() *model.Device {
	device := model.NewDevice("thermo", "sensor", "admin", "secret", 7, 3)
	device.ID = 42

	return device
}

func TestCreateDevice(t *testing.T) {
	t.Parallel()

	const validBody = `{"name":"thermo","type":"sensor","login":"admin","password":"secret","location":7,"api_user":3}`

	cases := []testCase{
		{
			name:   "created device returns its id",
			method: http.MethodPost,
			path:   "/devices",
			body:   validBody,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.CreateDeviceStub = func(_ context.Context, device *model.Device) (*model.Device, error) {
					if device.LocationID != 7 || device.APIUserID != 3 || device.Name != "thermo" {
						return nil, fmt.Errorf("unexpected device %+v", device)
					}

					device.ID = 42

					return device, nil
				}
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":42}`,
		},
		{
			name:           "empty strings are accepted",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":"","type":"","login":"","password":"","location":7,"api_user":3}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1}`,
		},
		{
			name:           "missing location is named",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":"thermo","type":"sensor","login":"admin","password":"secret","api_user":3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing field: location"}`,
		},
		{
			name:           "missing name is named",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"type":"sensor","login":"admin","password":"secret","location":7,"api_user":3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing field: name"}`,
		},
		{
			name:           "zero location id is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":"thermo","type":"sensor","login":"admin","password":"secret","location":0,"api_user":3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: location must be a positive id"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "negative api user id is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":"thermo","type":"sensor","login":"admin","password":"secret","location":7,"api_user":-3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: api_user must be a positive id"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "unknown key is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":"thermo","type":"sensor","login":"admin","password":"secret","location":7,"api_user":3,"color":"red"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"unknown field: color"}`,
		},
		{
			name:           "wrong type is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":"thermo","type":"sensor","login":"admin","password":"secret","location":"seven","api_user":3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid type for field: location"}`,
		},
		{
			name:           "malformed JSON is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"malformed JSON body"}`,
		},
		{
			name:           "empty body is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"request body is empty"}`,
		},
		{
			name:           "trailing data is rejected",
			method:         http.MethodPost,
			path:           "/devices",
			body:           validBody + `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"request body must contain a single JSON object"}`,
		},
		{
			name:   "missing location reference is unprocessable",
			method: http.MethodPost,
			path:   "/devices",
			body:   validBody,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.CreateDeviceStub = func(context.Context, *model.Device) (*model.Device, error) {
					return nil, model.NewReferenceNotFoundError(model.ReferenceLocation, 7)
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"location 7 not found"}`,
		},
		{
			name:   "missing api user reference is unprocessable",
			method: http.MethodPost,
			path:   "/devices",
			body:   validBody,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.CreateDeviceStub = func(context.Context, *model.Device) (*model.Device, error) {
					return nil, model.NewReferenceNotFoundError(model.ReferenceAPIUser, 3)
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"api_user 3 not found"}`,
		},
		{
			name:   "store failure is hidden behind a generic message",
			method: http.MethodPost,
			path:   "/devices",
			body:   validBody,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.CreateDeviceStub = func(context.Context, *model.Device) (*model.Device, error) {
					return nil, fmt.Errorf("%w: connection refused", model.ErrStore)
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	runCases(t, cases)
}

func TestGetDevice(t *testing.T) {
	t.Parallel()

	cases := []testCase{
		{
			name:   "device is rendered with raw reference ids",
			method: http.MethodGet,
			path:   "/devices/42",
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.GetDeviceStub = func(_ context.Context, id model.DeviceID) (*model.Device, error) {
					if id != 42 {
						return nil, model.ErrDeviceNotFound
					}

					return storedDevice(), nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":42,"name":"thermo","type":"sensor","login":"admin","password":"secret","location":7,"api_user":3}`,
		},
		{
			name:           "unknown device is not found",
			method:         http.MethodGet,
			path:           "/devices/9",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Device not found"}`,
		},
		{
			name:           "non numeric id is a bad request",
			method:         http.MethodGet,
			path:           "/devices/abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero id is a bad request",
			method:         http.MethodGet,
			path:           "/devices/0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			method: http.MethodGet,
			path:   "/devices/42",
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.GetDeviceStub = func(context.Context, model.DeviceID) (*model.Device, error) {
					return nil, fmt.Errorf("%w: %v", model.ErrStore, context.DeadlineExceeded)
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	runCases(t, cases)
}

func TestUpdateDevice(t *testing.T) {
	t.Parallel()

	cases := []testCase{
		{
			name:   "partial update only carries present fields",
			method: http.MethodPut,
			path:   "/devices/42",
			body:   `{"name":"renamed"}`,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.UpdateDeviceStub = func(_ context.Context, _ model.DeviceID, patch model.DevicePatch) (*model.Device, error) {
					if patch.Name == nil || patch.Type != nil || patch.Location != nil || patch.APIUser != nil {
						return nil, errors.New("unexpected patch")
					}

					device := storedDevice()
					device.Apply(patch)

					return device, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":42,"name":"renamed","type":"sensor","login":"admin","password":"secret","location":7,"api_user":3}`,
		},
		{
			name:   "references are passed through",
			method: http.MethodPut,
			path:   "/devices/42",
			body:   `{"location":8,"api_user":4}`,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.UpdateDeviceStub = func(_ context.Context, _ model.DeviceID, patch model.DevicePatch) (*model.Device, error) {
					device := storedDevice()
					device.Apply(patch)

					return device, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":42,"name":"thermo","type":"sensor","login":"admin","password":"secret","location":8,"api_user":4}`,
		},
		{
			name:   "empty patch returns the unchanged device",
			method: http.MethodPut,
			path:   "/devices/42",
			body:   `{}`,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.UpdateDeviceStub = func(_ context.Context, _ model.DeviceID, patch model.DevicePatch) (*model.Device, error) {
					if !patch.IsEmpty() {
						return nil, errors.New("unexpected patch")
					}

					return storedDevice(), nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":42,"name":"thermo","type":"sensor","login":"admin","password":"secret","location":7,"api_user":3}`,
		},
		{
			name:           "explicit null is rejected",
			method:         http.MethodPut,
			path:           "/devices/42",
			body:           `{"name":null}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: name"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "null reference is rejected",
			method:         http.MethodPut,
			path:           "/devices/42",
			body:           `{"type":"gateway","location":null}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: location"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "first null field is reported",
			method:         http.MethodPut,
			path:           "/devices/42",
			body:           `{"type":null,"name":null}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: name"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "null body is rejected",
			method:         http.MethodPut,
			path:           "/devices/42",
			body:           `null`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"request body must be a JSON object"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "non positive reference is rejected",
			method:         http.MethodPut,
			path:           "/devices/42",
			body:           `{"location":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: location must be a positive id"}`,
			assertSvc:      serviceNotCalled,
		},
		{
			name:           "unknown key is rejected",
			method:         http.MethodPut,
			path:           "/devices/42",
			body:           `{"owner":"me"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"unknown field: owner"}`,
		},
		{
			name:           "unknown device is not found",
			method:         http.MethodPut,
			path:           "/devices/9",
			body:           `{"name":"x"}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Device not found"}`,
		},
		{
			name:           "bad id is a bad request",
			method:         http.MethodPut,
			path:           "/devices/-1",
			body:           `{"name":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing reference is unprocessable",
			method: http.MethodPut,
			path:   "/devices/42",
			body:   `{"api_user":99}`,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.UpdateDeviceStub = func(context.Context, model.DeviceID, model.DevicePatch) (*model.Device, error) {
					return nil, model.NewReferenceNotFoundError(model.ReferenceAPIUser, 99)
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"api_user 99 not found"}`,
		},
	}

	runCases(t, cases)
}

func TestDeleteDevice(t *testing.T) {
	t.Parallel()

	cases := []testCase{
		{
			name:   "deleted device",
			method: http.MethodDelete,
			path:   "/devices/42",
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.DeleteDeviceReturns(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"deleted"}`,
		},
		{
			name:           "unknown device is not found",
			method:         http.MethodDelete,
			path:           "/devices/42",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Device not found"}`,
		},
		{
			name:           "bad id is a bad request",
			method:         http.MethodDelete,
			path:           "/devices/x1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	runCases(t, cases)
}

func TestLocations(t *testing.T) {
	t.Parallel()

	cases := []testCase{
		{
			name:           "created location",
			method:         http.MethodPost,
			path:           "/locations",
			body:           `{"name":"Lab"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1,"name":"Lab"}`,
		},
		{
			name:           "missing name",
			method:         http.MethodPost,
			path:           "/locations",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing field: name"}`,
		},
		{
			name:           "non object body",
			method:         http.MethodPost,
			path:           "/locations",
			body:           `["Lab"]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"request body must be a JSON object"}`,
		},
		{
			name:   "fetched location",
			method: http.MethodGet,
			path:   "/locations/5",
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.GetLocationStub = func(_ context.Context, id model.LocationID) (*model.Location, error) {
					return &model.Location{ID: id, Name: "Lab"}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":5,"name":"Lab"}`,
		},
		{
			name:           "unknown location",
			method:         http.MethodGet,
			path:           "/locations/5",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Location not found"}`,
		},
	}

	runCases(t, cases)
}

func TestAPIUsers(t *testing.T) {
	t.Parallel()

	cases := []testCase{
		{
			name:           "created api user hides email and password",
			method:         http.MethodPost,
			path:           "/api_users",
			body:           `{"name":"ann","email":"ann@example.com","password":"pw"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1,"name":"ann"}`,
		},
		{
			name:           "missing password",
			method:         http.MethodPost,
			path:           "/api_users",
			body:           `{"name":"ann","email":"ann@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing field: password"}`,
		},
		{
			name:           "malformed email",
			method:         http.MethodPost,
			path:           "/api_users",
			body:           `{"name":"ann","email":"not-an-email","password":"pw"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid field: email must be a valid email address"}`,
		},
		{
			name:   "duplicate email conflicts",
			method: http.MethodPost,
			path:   "/api_users",
			body:   `{"name":"ann","email":"ann@example.com","password":"pw"}`,
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.CreateAPIUserStub = func(context.Context, string, string, string) (*model.APIUser, error) {
					return nil, model.ErrDuplicateEmail
				}
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"ApiUser with this email already exists"}`,
		},
		{
			name:   "fetched api user never renders the password",
			method: http.MethodGet,
			path:   "/api_users/3",
			setupSvc: func(fake *mocks.FakeInventoryService) {
				fake.GetAPIUserStub = func(_ context.Context, id model.APIUserID) (*model.APIUser, error) {
					user := model.NewAPIUser("ann", "ann@example.com", "pw")
					user.ID = id

					return user, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":3,"name":"ann","email":"ann@example.com"}`,
		},
		{
			name:           "unknown api user",
			method:         http.MethodGet,
			path:           "/api_users/3",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"ApiUser not found"}`,
		},
	}

	runCases(t, cases)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		path           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "liveness",
			path:           "/livez",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "ready",
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","ready":true}`,
		},
		{
			name:           "database unreachable",
			path:           "/readyz",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"unavailable","ready":false}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pinger := &mocks.FakeDatabaseHealthChecker{}
			pinger.PingReturns(tc.pingErr)

			router := newTestRouter(newFakeService(), pinger)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}
