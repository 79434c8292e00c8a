package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterhub/internal/platform/metrics"
	"rosterhub/internal/platform/middleware"
	"rosterhub/internal/roster/models"
	"rosterhub/internal/transport/http/shared"
	derrors "rosterhub/pkg/domain-errors"
)

// Service defines the roster operations the handler depends on.
type Service interface {
	CreatePerson(ctx context.Context, name, email string) (models.Person, error)
	ListPeople(ctx context.Context) ([]models.PersonWithServices, error)
	CreateService(ctx context.Context, title, description string) (models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	Assign(ctx context.Context, personID, serviceID int64) error
}

// Handler exposes the people/services/assignment endpoints. All routes are
// protected; the router applies RequireSession before any of these run.
type Handler struct {
	logger  *slog.Logger
	roster  Service
	metrics *metrics.Metrics
}

func New(roster Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, roster: roster, metrics: metrics}
}

// Register registers the roster routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/people", h.handleListPeople)
	r.Post("/api/people", h.handleCreatePerson)
	r.Get("/api/services", h.handleListServices)
	r.Post("/api/services", h.handleCreateService)
	r.Post("/api/people/{personID}/services/{serviceID}", h.handleAssign)
}

type personRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}

	person, err := h.roster.CreatePerson(r.Context(), req.Name, req.Email)
	if err != nil {
		if derrors.Is(err, derrors.CodeInvalidInput) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "create person", err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, person)
}

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.roster.ListPeople(r.Context())
	if err != nil {
		h.writeServerError(w, r, "list people", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, people)
}

type serviceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}

	svc, err := h.roster.CreateService(r.Context(), req.Title, req.Description)
	if err != nil {
		if derrors.Is(err, derrors.CodeInvalidInput) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "create service", err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, svc)
}

func (h *Handler) handleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.roster.ListServices(r.Context())
	if err != nil {
		h.writeServerError(w, r, "list services", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, services)
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	personID, err := shared.ParseID(r, "personID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	serviceID, err := shared.ParseID(r, "serviceID")
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	if err := h.roster.Assign(r.Context(), personID, serviceID); err != nil {
		if derrors.Is(err, derrors.CodeNotFound) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "assign service", err)
		return
	}

	h.metrics.Assignments.Inc()
	shared.WriteJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *Handler) writeServerError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.ErrorContext(r.Context(), "store failure",
		"op", op,
		"error", err.Error(),
		"request_id", middleware.GetRequestID(r.Context()),
	)
	shared.WriteError(w, derrors.New(derrors.CodeInternal, "internal server error"))
}
