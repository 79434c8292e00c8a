package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterhub/internal/platform/metrics"
	"rosterhub/internal/platform/middleware"
	"rosterhub/internal/requests/models"
	"rosterhub/internal/requests/service"
	"rosterhub/internal/transport/http/shared"
	derrors "rosterhub/pkg/domain-errors"
)

// Service defines the request operations the handler depends on.
type Service interface {
	Create(ctx context.Context, params service.CreateParams) (models.Request, error)
	List(ctx context.Context) ([]models.Request, error)
}

// Handler exposes the request-intake endpoints. Both routes are protected; the
// router applies RequireSession before they run.
type Handler struct {
	logger   *slog.Logger
	requests Service
	metrics  *metrics.Metrics
}

func New(requests Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, requests: requests, metrics: metrics}
}

// Register registers the request routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/requests", h.handleList)
	r.Post("/api/requests", h.handleCreate)
}

type createRequest struct {
	Requester           string `json:"requester"`
	Type                string `json:"type"`
	DonationName        string `json:"donation_name"`
	DonationDescription string `json:"donation_description"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}

	created, err := h.requests.Create(r.Context(), service.CreateParams{
		Requester:           req.Requester,
		Type:                req.Type,
		DonationName:        req.DonationName,
		DonationDescription: req.DonationDescription,
	})
	if err != nil {
		if derrors.Is(err, derrors.CodeInvalidInput) {
			shared.WriteError(w, err)
			return
		}
		h.writeServerError(w, r, "create request", err)
		return
	}

	h.metrics.RequestsCreated.Inc()
	shared.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.List(r.Context())
	if err != nil {
		h.writeServerError(w, r, "list requests", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) writeServerError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.ErrorContext(r.Context(), "store failure",
		"op", op,
		"error", err.Error(),
		"request_id", middleware.GetRequestID(r.Context()),
	)
	shared.WriteError(w, derrors.New(derrors.CodeInternal, "internal server error"))
}
