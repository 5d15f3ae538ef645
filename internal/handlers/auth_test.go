package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"ticket-tracker/internal/models"
	"ticket-tracker/internal/services"
)

func TestAuthHandler_Login(t *testing.T) {
	service := &services.MockAuthService{
		LoginFn: func(req *models.LoginRequest) (*services.AuthResponse, error) {
			if req.Email == "jane@example.com" && req.Password == "correct-horse" {
				return &services.AuthResponse{Token: "signed-token"}, nil
			}
			return nil, models.NewValidationError("invalid email or password")
		},
	}
	handler := NewAuthHandler(service, zap.NewNop())

	t.Run("valid credentials", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Email: "jane@example.com", Password: "correct-horse"})
		rec := httptest.NewRecorder()
		handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp services.AuthResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
		rec := httptest.NewRecorder()
		handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec.Body)
		assert.Equal(t, "Validation", resp.ErrorType)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("nope"))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Create(t *testing.T) {
	service := &services.MockAuthService{
		RegisterFn: func(req *models.UserCreateRequest) (*models.User, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			if req.Email == "taken@example.com" {
				return nil, models.NewConflictError("a user with this email already exists")
			}
			return &models.User{ID: 5, Name: req.Name, Email: req.Email, Type: req.Type, PasswordHash: "hash"}, nil
		},
	}
	handler := NewUserHandler(service, zap.NewNop())

	t.Run("valid registration returns summary only", func(t *testing.T) {
		body, _ := json.Marshal(models.UserCreateRequest{Name: "Jane", Email: "jane@example.com", Password: "correct-horse"})
		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var raw map[string]interface{}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
		assert.Equal(t, float64(5), raw["id"])
		assert.Equal(t, "jane@example.com", raw["email"])
		assert.NotContains(t, raw, "password")
		assert.NotContains(t, raw, "type")
	})

	t.Run("duplicate email", func(t *testing.T) {
		body, _ := json.Marshal(models.UserCreateRequest{Name: "Jane", Email: "taken@example.com", Password: "correct-horse"})
		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeErrorResponse(t, rec.Body)
		assert.Equal(t, "Conflict", resp.ErrorType)
	})

	t.Run("invalid payload", func(t *testing.T) {
		body, _ := json.Marshal(models.UserCreateRequest{Name: "Jane", Email: "bad", Password: "correct-horse"})
		rec := httptest.NewRecorder()
		handler.Create(rec, httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
