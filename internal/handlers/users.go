package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ticket-tracker/internal/models"
	"ticket-tracker/internal/services"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService services.AuthServiceInterface, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		logger:      logger,
	}
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := &models.UserCreateRequest{}
	if err := decodeJSON(r, req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user.Summary())
}

// Get handles GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, models.NewValidationError("invalid user id"))
		return
	}

	user, err := h.authService.GetUser(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
