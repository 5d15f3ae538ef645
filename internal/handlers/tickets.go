package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ticket-tracker/internal/middleware"
	"ticket-tracker/internal/models"
	"ticket-tracker/internal/services"
)

// TicketHandler handles ticket HTTP requests
type TicketHandler struct {
	ticketService services.TicketServiceInterface
	logger        *zap.Logger
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService services.TicketServiceInterface, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		logger:        logger,
	}
}

// assignRequest is the body of PUT /tickets/{id}/assign
type assignRequest struct {
	UserID int `json:"userId"`
}

// Create handles POST /tickets
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, h.logger, models.NewUnauthenticatedError("authentication required"))
		return
	}

	req := &models.TicketCreateRequest{}
	if err := decodeJSON(r, req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	ticket, err := h.ticketService.CreateTicket(req, user)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, ticket)
}

// Get handles GET /tickets/{id}
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, models.NewValidationError("invalid ticket id"))
		return
	}

	ticket, err := h.ticketService.GetTicket(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

// Assign handles PUT /tickets/{id}/assign
func (h *TicketHandler) Assign(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, h.logger, models.NewUnauthenticatedError("authentication required"))
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, models.NewValidationError("invalid ticket id"))
		return
	}

	req := &assignRequest{}
	if err := decodeJSON(r, req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.UserID <= 0 {
		writeError(w, h.logger, models.NewValidationError("userId is required"))
		return
	}

	if err := h.ticketService.AssignUser(id, req.UserID, user); err != nil {
		writeError(w, h.logger, err)
		return
	}

	ticket, err := h.ticketService.GetTicket(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}
