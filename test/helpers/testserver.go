package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interntrack_backend/internal/app"
	"interntrack_backend/internal/config"
	"interntrack_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestServer bundles an httptest server with the database handle behind it.
// Every test gets its own in-memory database, so tests stay independent and
// can run in parallel.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file::memory:"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.TTLHours = 720

	db, err := gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Internship{}))

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	ts := &TestServer{Server: server, DB: db}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest issues an HTTP request against the test server and returns the
// response together with its body read out as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "build request")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "send request")

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "read response body")
	res.Body.Close()

	return res, string(resBody)
}

// RegisterUser registers a fresh user through the API and returns the issued
// token. Email defaults to a unique address when empty.
func (ts *TestServer) RegisterUser(t *testing.T, email, password string) string {
	t.Helper()

	if email == "" {
		email = fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"fullName": "Test User",
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed, got: "+body)

	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}

// CreateInternship creates an internship record through the API and returns
// its id.
func (ts *TestServer) CreateInternship(t *testing.T, token string, payload map[string]interface{}) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", token, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, "create should succeed, got: "+body)

	var parsed struct {
		Internship struct {
			ID string `json:"id"`
		} `json:"internship"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Internship.ID)
	return parsed.Internship.ID
}
