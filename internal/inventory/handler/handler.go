package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterhub/internal/inventory/models"
	"rosterhub/internal/platform/metrics"
	"rosterhub/internal/platform/middleware"
	"rosterhub/internal/transport/http/shared"
	derrors "rosterhub/pkg/domain-errors"
)

// Service defines the item operations the handler depends on.
type Service interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	Create(ctx context.Context, name, description string, ownerID int64) (models.Item, error)
	Update(ctx context.Context, id int64, name, description string) (models.Item, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Handler exposes the items CRUD endpoints. All routes require a session; the
// router applies RequireSession before any of these run.
type Handler struct {
	logger  *slog.Logger
	items   Service
	metrics *metrics.Metrics
}

func New(items Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, items: items, metrics: metrics}
}

// Register registers the item routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/items", h.handleList)
	r.Get("/api/items/{id}", h.handleGet)
	r.Post("/api/items", h.handleCreate)
	r.Put("/api/items/{id}", h.handleUpdate)
	r.Delete("/api/items/{id}", h.handleDelete)
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		h.writeServerError(w, r, "list items", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r, "id")
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		if derrors.Is(err, derrors.CodeNotFound) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "get item", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}

	identity := middleware.GetIdentity(r.Context())
	item, err := h.items.Create(r.Context(), req.Name, req.Description, identity.UserID)
	if err != nil {
		if derrors.Is(err, derrors.CodeInvalidInput) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "create item", err)
		return
	}

	h.metrics.ItemsCreated.Inc()
	shared.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r, "id")
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}

	item, err := h.items.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		if derrors.Is(err, derrors.CodeInvalidInput) || derrors.Is(err, derrors.CodeNotFound) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "update item", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r, "id")
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	deleted, err := h.items.Delete(r.Context(), id)
	if err != nil {
		if derrors.Is(err, derrors.CodeNotFound) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "delete item", err)
		return
	}

	h.metrics.ItemsDeleted.Inc()
	shared.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (h *Handler) writeServerError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.ErrorContext(r.Context(), "store failure",
		"op", op,
		"error", err.Error(),
		"request_id", middleware.GetRequestID(r.Context()),
	)
	shared.WriteError(w, derrors.New(derrors.CodeInternal, "internal server error"))
}
