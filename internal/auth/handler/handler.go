package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"rosterhub/internal/auth/device"
	"rosterhub/internal/auth/models"
	"rosterhub/internal/auth/service"
	"rosterhub/internal/platform/metrics"
	"rosterhub/internal/platform/middleware"
	"rosterhub/internal/transport/http/shared"
	derrors "rosterhub/pkg/domain-errors"
)

// Service defines the auth operations the handler depends on.
type Service interface {
	Signup(ctx context.Context, params service.SignupParams) (int64, error)
	Login(ctx context.Context, username, password, device string) (models.Session, error)
	Logout(ctx context.Context, token string) error
}

// Handler exposes the signup/login/logout endpoints. Logout deliberately does
// not go through RequireSession: an unknown token must still return 200.
type Handler struct {
	logger  *slog.Logger
	auth    Service
	metrics *metrics.Metrics
}

func New(auth Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, auth: auth, metrics: metrics}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/signup", h.handleSignup)
	r.Post("/api/login", h.handleLogin)
	r.Post("/api/logout", h.handleLogout)
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

type signupResponse struct {
	UserID int64 `json:"user_id"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if err := validateSignup(req); err != nil {
		shared.WriteError(w, err)
		return
	}

	userID, err := h.auth.Signup(ctx, service.SignupParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		if derrors.Is(err, derrors.CodeConflict) || derrors.Is(err, derrors.CodeInvalidInput) {
			shared.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "signup failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, derrors.New(derrors.CodeInternal, "failed to create user"))
		return
	}

	h.metrics.UsersCreated.Inc()
	shared.WriteJSON(w, http.StatusCreated, signupResponse{UserID: userID})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionID string `json:"session_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		shared.WriteError(w, derrors.New(derrors.CodeInvalidInput, "username and password are required"))
		return
	}

	sess, err := h.auth.Login(ctx, req.Username, req.Password, device.Label(r.UserAgent()))
	if err != nil {
		if derrors.Is(err, derrors.CodeUnauthorized) || derrors.Is(err, derrors.CodeInvalidInput) {
			h.metrics.LoginFailures.Inc()
			shared.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "login failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, derrors.New(derrors.CodeInternal, "login failed"))
		return
	}

	h.metrics.Logins.Inc()
	shared.WriteJSON(w, http.StatusOK, loginResponse{
		SessionID: sess.Token,
		UserID:    sess.UserID,
		Username:  sess.Username,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.auth.Logout(ctx, middleware.BearerToken(r)); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, derrors.New(derrors.CodeInternal, "logout failed"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func validateSignup(req signupRequest) error {
	if req.Username == "" || req.Password == "" {
		return derrors.New(derrors.CodeInvalidInput, "username and password are required")
	}
	if !govalidator.StringLength(req.Username, "1", "100") {
		return derrors.New(derrors.CodeInvalidInput, "username must be at most 100 characters")
	}
	if req.Email != "" && !govalidator.IsEmail(req.Email) {
		return derrors.New(derrors.CodeInvalidInput, "invalid email")
	}
	return nil
}
