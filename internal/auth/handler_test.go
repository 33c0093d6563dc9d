// AngelaMos | 2026
// handler_test.go

package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bite-platform/bite-backend/internal/core"
)

func newTestRouter(t *testing.T) (*chi.Mux, *fakeUsers) {
	t.Helper()

	svc, users, _ := newTestService(t)
	handler := NewHandler(svc, validator.New(validator.WithRequiredStructEnabled()))

	router := chi.NewRouter()
	router.Route("/v1/auth", handler.RegisterPublicRoutes)
	return router, users
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", studentRequest())

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
				Role  string `json:"role"`
				Tier  string `json:"tier"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, "ada@example.com", envelope.Data.User.Email)
	assert.Equal(t, "student", envelope.Data.User.Role)
	assert.Equal(t, "Free", envelope.Data.User.Tier)
}

func TestRegisterEndpointValidatesPayload(t *testing.T) {
	router, users := newTestRouter(t)

	req := studentRequest()
	req.Email = "not-an-email"

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, users.created)

	var envelope core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	first := doJSON(t, router, http.MethodPost, "/v1/auth/register", studentRequest())
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/v1/auth/register", studentRequest())
	assert.Equal(t, http.StatusConflict, second.Code)

	var envelope core.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &envelope))
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	router, users := newTestRouter(t)
	seedUser(t, users, "ada@example.com", "secret123")

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "invalid email or password", envelope.Error.Message)
}

func TestForgotPasswordEndpointAlwaysGeneric(t *testing.T) {
	router, users := newTestRouter(t)
	seedUser(t, users, "ada@example.com", "secret123")

	known := doJSON(t, router, http.MethodPost, "/v1/auth/forgot-password",
		ForgotPasswordRequest{Email: "ada@example.com"})
	unknown := doJSON(t, router, http.MethodPost, "/v1/auth/forgot-password",
		ForgotPasswordRequest{Email: "nobody@example.com"})

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
}
