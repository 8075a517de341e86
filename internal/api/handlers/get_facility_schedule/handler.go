package get_facility_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/haulport/DockSlotService/internal/api/handlers"
	"github.com/haulport/DockSlotService/internal/api/middleware"
	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/service/schedule"
)

const (
	msgInvalidFacilityID = "invalid facility ID"
	msgInvalidRange      = "invalid date range, expected YYYY-MM-DD"
	msgMissingUserID     = "missing user ID"
	msgFacilityNotFound  = "facility not found"
	msgForbidden         = "access denied"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/schedule
// Query params: from, to (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/schedule - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var from, to time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err = time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err = time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
	}

	cfg, err := h.service.GetConfig(r.Context(), userID, facilityID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/schedule - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{id}/schedule - Access denied: facility_id=%d, user_id=%d", facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /facilities/{id}/schedule - Failed to get config: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/schedule - Config retrieved: facility_id=%d, user_id=%d, overrides=%d, closures=%d",
		facilityID, userID, len(cfg.HoursOverrides), len(cfg.Closures))
	handlers.RespondJSON(w, http.StatusOK, FromServiceConfig(cfg))
}
