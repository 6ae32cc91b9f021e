//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/company-directory/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/activity"
	buildingrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/building"
	companyrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/company"
	"github.com/heartmarshall/company-directory/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/service/building"
	"github.com/heartmarshall/company-directory/internal/service/company"
	"github.com/heartmarshall/company-directory/internal/service/taxonomy"
	"github.com/heartmarshall/company-directory/internal/transport/middleware"
	"github.com/heartmarshall/company-directory/internal/transport/rest"
	"github.com/heartmarshall/company-directory/internal/transport/rest/dataloader"
	"github.com/heartmarshall/company-directory/internal/transport/validate"
)

const testAPIKey = "e2e-test-api-key-0123456789"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	activities := activityrepo.New(pool)
	buildings := buildingrepo.New(pool)
	companies := companyrepo.New(pool)

	const maxDepth = 3
	taxonomySvc := taxonomy.NewService(logger, activities, nil, txm, maxDepth)
	buildingSvc := building.NewService(logger, buildings, txm)
	companySvc := company.NewService(logger, companies, buildings, activities, taxonomySvc, txm, maxDepth)

	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	v := validate.New()
	limits := config.SearchConfig{DefaultLimit: 100, MaxLimit: 1000}

	router := rest.NewRouter(rest.RouterDeps{
		Health:   rest.NewHealthHandler(pool, "test-version"),
		Activity: rest.NewActivityHandler(taxonomySvc, v, limits, logger),
		Building: rest.NewBuildingHandler(buildingSvc, v, limits, logger),
		Company:  rest.NewCompanyHandler(companySvc, v, limits, logger),
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Loaders: &dataloader.Repos{
			Building: buildings,
			Phone:    companies,
			Activity: companies,
		},
	}, mux.MiddlewareFunc(metrics.Middleware()))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.APIKey(logger, testAPIKey, rest.PublicPaths...),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends an authenticated JSON request and decodes the response into out
// (when out is non-nil). It returns the status code.
func (ts *testServer) do(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "decode %s %s", method, path)
	}
	return resp.StatusCode
}

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type activity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

type activityNode struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Children []activityNode `json:"children"`
}

type buildingDTO struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type phone struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

type companyDTO struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	BuildingID int64        `json:"building_id"`
	Building   *buildingDTO `json:"building"`
	Phones     []phone      `json:"phones"`
	Activities []activity   `json:"activities"`
}

type errorBody struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

// ---------------------------------------------------------------------------
// Fixture helpers (all names are suffixed so tests can share one database)
// ---------------------------------------------------------------------------

func suffix() string {
	return fmt.Sprintf("%08x", rand.Uint32())
}

func createActivity(t *testing.T, ts *testServer, name string, parentID *int64) activity {
	t.Helper()
	var a activity
	status := ts.do(t, http.MethodPost, "/activities", map[string]any{"name": name, "parent_id": parentID}, &a)
	require.Equal(t, http.StatusCreated, status, "create activity %q", name)
	return a
}

func createBuilding(t *testing.T, ts *testServer, lat, lng float64) buildingDTO {
	t.Helper()
	var b buildingDTO
	status := ts.do(t, http.MethodPost, "/buildings", map[string]any{
		"address":   "ул. Тестовая, д. " + suffix(),
		"latitude":  lat,
		"longitude": lng,
	}, &b)
	require.Equal(t, http.StatusCreated, status)
	return b
}

func createCompany(t *testing.T, ts *testServer, name string, buildingID int64, phones []string, activityIDs ...int64) companyDTO {
	t.Helper()
	var c companyDTO
	status := ts.do(t, http.MethodPost, "/companies", map[string]any{
		"name":          name,
		"building_id":   buildingID,
		"phone_numbers": phones,
		"activity_ids":  activityIDs,
	}, &c)
	require.Equal(t, http.StatusCreated, status, "create company %q", name)
	return c
}

// isolatedPoint returns a random coordinate in the southern ocean, far from
// anything other tests create.
func isolatedPoint() (float64, float64) {
	return -70 + rand.Float64()*10, -170 + rand.Float64()*300
}

func ids(companies []companyDTO) []int64 {
	out := make([]int64, len(companies))
	for i, c := range companies {
		out[i] = c.ID
	}
	return out
}
