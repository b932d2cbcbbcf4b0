package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"interntrack_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"fullName": "Jane Doe",
		"email":    "Jane.Doe@Example.com",
		"password": "secret123",
	}

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBody, "Registration successful")
	assert.Contains(t, regBody, `"token"`)
	// Stored identity must never leak the credential.
	assert.NotContains(t, regBody, "passwordHash")
	assert.NotContains(t, regBody, "$2a$")

	// Login matches regardless of the casing used at registration.
	logRes, logBody := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "jane.doe@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBody, "Login successful")

	var parsed struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBody), &parsed))
	assert.NotEmpty(t, parsed.Token)
	assert.Equal(t, "jane.doe@example.com", parsed.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	ts.RegisterUser(t, "user@test.com", "secret123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "user@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	// Same message as a wrong password, so the response does not reveal
	// whether the account exists.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid email or password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	ts.RegisterUser(t, "taken@test.com", "secret123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"fullName": "Second User",
		"email":    "TAKEN@test.com",
		"password": "another123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Email already registered")
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"fullName": "J",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var parsed struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.False(t, parsed.Success)
	assert.Contains(t, parsed.Errors, "fullName")
	assert.Contains(t, parsed.Errors, "email")
	assert.Contains(t, parsed.Errors, "password")
}

func TestRegister_WhitespaceOnlyName(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	// A name of pure whitespace trims to empty and fails the presence rule
	// rather than creating an account with a blank name.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"fullName": "   ",
		"email":    "blank@test.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var parsed struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Contains(t, parsed.Errors, "fullName")

	// Same for a blank name in a profile patch.
	token := ts.RegisterUser(t, "real@test.com", "secret123")
	updRes, updBody := ts.SendRequest(t, http.MethodPut, "/api/auth/profile", token, map[string]interface{}{
		"fullName": " \t ",
	})
	assert.Equal(t, http.StatusBadRequest, updRes.StatusCode)
	assert.Contains(t, updBody, "fullName")

	// The rejected patch left the stored name untouched.
	getRes, getBody := ts.SendRequest(t, http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBody, "Test User")
}

func TestProfile_GetAndUpdate(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := ts.RegisterUser(t, "profile@test.com", "secret123")

	getRes, getBody := ts.SendRequest(t, http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBody, "profile@test.com")
	assert.NotContains(t, getBody, "passwordHash")

	updRes, updBody := ts.SendRequest(t, http.MethodPut, "/api/auth/profile", token, map[string]interface{}{
		"fullName":       "Updated Name",
		"university":     "MIT",
		"graduationYear": 2027,
	})
	assert.Equal(t, http.StatusOK, updRes.StatusCode)
	assert.Contains(t, updBody, "Profile updated successfully")
	assert.Contains(t, updBody, "Updated Name")
	assert.Contains(t, updBody, "MIT")

	// Login still works after the profile update.
	logRes, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "profile@test.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
}

func TestProfile_Unauthorized(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	noToken, noTokenBody := ts.SendRequest(t, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noToken.StatusCode)
	assert.Contains(t, noTokenBody, "Access denied. No token provided.")

	badToken, badTokenBody := ts.SendRequest(t, http.MethodGet, "/api/auth/profile", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, badToken.StatusCode)
	assert.Contains(t, badTokenBody, "Invalid token")
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "running")

	missing, missingBody := ts.SendRequest(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Contains(t, missingBody, "Route not found")
}
