//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/default-registry/internal/adapter/kafka"
	"github.com/heartmarshall/default-registry/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/default-registry/internal/adapter/storage"
	"github.com/heartmarshall/default-registry/internal/app"
	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/metrics"
	"github.com/heartmarshall/default-registry/internal/transport/middleware"
)

const testPassword = "s3cret-pass"

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	cfg    *config.Config
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer runs the full stack against the shared PostgreSQL
// container. Default accounts get unique emails so that servers started by
// different tests do not share users.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	suffix := uuid.NewString()[:8]

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			BcryptCost:     4,
		},
		Bootstrap: config.BootstrapConfig{
			AdminEmail:       "admin-" + suffix + "@example.com",
			AdminPassword:    testPassword,
			ReviewerEmail:    "reviewer-" + suffix + "@example.com",
			ReviewerPassword: testPassword,
			OperatorEmail:    "operator-" + suffix + "@example.com",
			OperatorPassword: testPassword,
			SeedReasons:      true,
		},
		Storage: config.StorageConfig{
			LocalDir:       t.TempDir(),
			PublicBaseURL:  "/files",
			MaxUploadBytes: 1 << 20,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		},
		RateLimit: config.RateLimitConfig{LoginPerMinute: 1000, CleanupInterval: time.Minute},
	}

	files, err := storage.NewLocal(cfg.Storage)
	require.NoError(t, err)

	infra := app.Infra{
		Files:   files,
		Events:  kafka.Noop{},
		Metrics: metrics.New(prometheus.NewRegistry()),
	}
	repos := app.NewRepos(pool)
	svcs := app.NewServices(cfg, logger, pool, repos, infra)

	_, err = svcs.Bootstrap.Seed(context.Background())
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHTTPHandler(cfg, logger, pool, repos, svcs, infra, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, cfg: cfg}
}

// login returns an access token for email.
func (ts *testServer) login(t *testing.T, email string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/auth/token", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, status, "login %s: %v", email, body)
	return body["access_token"].(string)
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.login(t, ts.cfg.Bootstrap.AdminEmail)
}

func (ts *testServer) reviewerToken(t *testing.T) string {
	return ts.login(t, ts.cfg.Bootstrap.ReviewerEmail)
}

func (ts *testServer) operatorToken(t *testing.T) string {
	return ts.login(t, ts.cfg.Bootstrap.OperatorEmail)
}

// do sends a JSON request and decodes a JSON object response.
func (ts *testServer) do(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()
	status, raw := ts.doRaw(t, method, path, token, payload)
	var out map[string]any
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "decode %s %s: %s", method, path, raw)
	}
	return status, out
}

// doList is like do for endpoints returning a JSON array.
func (ts *testServer) doList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()
	status, raw := ts.doRaw(t, method, path, token, nil)
	var out []map[string]any
	if status == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &out), "decode %s %s: %s", method, path, raw)
	}
	return status, out
}

func (ts *testServer) doRaw(t *testing.T, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.send(t, req)
}

// upload posts content as the multipart "file" part.
func (ts *testServer) upload(t *testing.T, path, token, filename string, content []byte) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	status, raw := ts.send(t, req)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "decode upload: %s", raw)
	return status, out
}

func (ts *testServer) send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// firstReason returns the id of the first enabled reason of typ.
func (ts *testServer) firstReason(t *testing.T, token, typ string) string {
	t.Helper()
	status, reasons := ts.doList(t, http.MethodGet, "/reasons?enabled_only=true&type="+typ, token)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, reasons)
	return reasons[0]["id"].(string)
}

// createCustomer creates a customer with a unique name and returns its id.
func (ts *testServer) createCustomer(t *testing.T, token, industry, region string) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/customers", token, map[string]any{
		"name":     "Customer " + uuid.NewString()[:8],
		"industry": industry,
		"region":   region,
	})
	require.Equal(t, http.StatusCreated, status, "%v", body)
	return body["id"].(string)
}

func errorCode(body map[string]any) string {
	code, _ := body["code"].(string)
	return code
}
