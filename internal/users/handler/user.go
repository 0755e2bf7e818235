package handler

import (
	"encoding/json"
	"net/http"
	"railbook/internal/users/service"
	"railbook/pkg/config"
	apperrors "railbook/pkg/errors"
	httputil "railbook/pkg/http"
	"railbook/pkg/model"
	"railbook/pkg/sanitizer"

	"github.com/julienschmidt/httprouter"
)

type UserHandler struct {
	cfg     *config.Config
	service service.UserService
}

func NewUserHandler(cfg *config.Config, svc service.UserService) *UserHandler {
	return &UserHandler{
		cfg:     cfg,
		service: svc,
	}
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/users", h.Register)
	router.POST("/api/v1/sessions", h.Login)
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.service.Register(r.Context(), creds)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, user); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.service.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *UserHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (*model.Credentials, bool) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, apperrors.InvalidInput("invalid request body"))
		return nil, false
	}

	creds.Username = sanitizer.NormalizeUsername(creds.Username)
	return &creds, true
}

func (h *UserHandler) writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.cfg.Log.Error("Request failed", "code", appErr.Code, "error", appErr.Error())
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("Failed to write error response", "error", writeErr)
	}
}
