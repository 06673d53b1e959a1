package get_pilgrimage_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-BookingService/internal/api/handlers"
)

const (
	msgInvalidPilgrimageID = "некорректный ID группового заезда"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pilgrimages/{pilgrimageId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pilgrimageID, err := strconv.ParseInt(vars["pilgrimageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /pilgrimages/{id}/bookings - Invalid pilgrimage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPilgrimageID)
		return
	}

	result, err := h.service.GetByPilgrimage(r.Context(), pilgrimageID)
	if err != nil {
		h.logger.Error("GET /pilgrimages/{id}/bookings - Failed to fetch bookings: pilgrimage_id=%d, error=%v",
			pilgrimageID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
