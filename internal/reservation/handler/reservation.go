package handler

import (
	"encoding/json"
	"net/http"
	inventoryservice "railbook/internal/inventory/service"
	"railbook/internal/reservation/service"
	"railbook/pkg/config"
	apperrors "railbook/pkg/errors"
	httputil "railbook/pkg/http"
	"railbook/pkg/model"
	"railbook/pkg/sanitizer"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type ReservationHandler struct {
	cfg       *config.Config
	engine    service.Engine
	inventory inventoryservice.Inventory
}

func NewReservationHandler(cfg *config.Config, engine service.Engine, inventory inventoryservice.Inventory) *ReservationHandler {
	return &ReservationHandler{
		cfg:       cfg,
		engine:    engine,
		inventory: inventory,
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.CreateBooking)
	router.GET("/api/v1/bookings", h.ListBookings)
	router.GET("/api/v1/bookings/:id", h.GetBooking)
	router.POST("/api/v1/bookings/:id/cancel", h.CancelBooking)
	router.GET("/api/v1/trains", h.ListTrains)
	router.GET("/api/v1/trains/:id", h.GetTrain)
}

func (h *ReservationHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	req.UserID = sanitizer.NormalizeUsername(req.UserID)
	req.TrainID = sanitizer.NormalizeTrainID(req.TrainID)

	confirmation, err := h.engine.Book(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteCreated(w, confirmation); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) GetBooking(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id, err := parseBookingID(params.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	booking, err := h.engine.GetBooking(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := sanitizer.NormalizeUsername(r.URL.Query().Get("user_id"))
	if userID == "" {
		h.writeError(w, apperrors.InvalidInput("user_id query parameter is required"))
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	bookings, total, err := h.engine.BookingsForUser(r.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) CancelBooking(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id, err := parseBookingID(params.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req model.CancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	req.UserID = sanitizer.NormalizeUsername(req.UserID)

	result, err := h.engine.Cancel(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) ListTrains(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	trains, total, err := h.inventory.ListTrains(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WritePaginated(w, trains, total, limit, offset); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) GetTrain(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id := sanitizer.NormalizeTrainID(params.ByName("id"))

	train, err := h.inventory.GetTrain(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, train); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.cfg.Log.Error("Request failed", "code", appErr.Code, "error", appErr.Error())
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("Failed to write error response", "error", writeErr)
	}
}

func parseBookingID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput("booking ID must be a positive integer")
	}
	return id, nil
}
