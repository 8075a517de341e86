package delete_hours_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haulport/DockSlotService/internal/api/handlers"
	"github.com/haulport/DockSlotService/internal/api/middleware"
	"github.com/haulport/DockSlotService/internal/service/schedule"
)

const (
	msgInvalidFacilityID = "invalid facility ID"
	msgInvalidOverrideID = "invalid override ID"
	msgMissingUserID     = "missing user ID"
	msgFacilityNotFound  = "facility not found"
	msgOverrideNotFound  = "hours override not found"
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

// Handle DELETE /api/v1/facilities/{facilityId}/schedule/hours/{overrideId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /facilities/{id}/schedule/hours/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	overrideID, err := strconv.ParseInt(vars["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /facilities/{id}/schedule/hours/{id} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /facilities/{id}/schedule/hours/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.DeleteHoursOverride(r.Context(), userID, facilityID, overrideID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrFacilityNotFound):
			h.logger.Warn("DELETE /facilities/{id}/schedule/hours/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("DELETE /facilities/{id}/schedule/hours/{id} - Override not found: override_id=%d", overrideID)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /facilities/{id}/schedule/hours/{id} - Access denied: facility_id=%d, user_id=%d", facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /facilities/{id}/schedule/hours/{id} - Failed to delete override: override_id=%d, error=%v", overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /facilities/{id}/schedule/hours/{id} - Override deleted: facility_id=%d, user_id=%d, override_id=%d",
		facilityID, userID, overrideID)
	w.WriteHeader(http.StatusNoContent)
}
