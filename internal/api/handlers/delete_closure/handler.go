package delete_closure

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
	msgInvalidClosureID  = "invalid closure ID"
	msgMissingUserID     = "missing user ID"
	msgFacilityNotFound  = "facility not found"
	msgClosureNotFound   = "closure not found"
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

// Handle DELETE /api/v1/facilities/{facilityId}/schedule/closures/{closureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /facilities/{id}/schedule/closures/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	closureID, err := strconv.ParseInt(vars["closureId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /facilities/{id}/schedule/closures/{id} - Invalid closure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /facilities/{id}/schedule/closures/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.DeleteClosure(r.Context(), userID, facilityID, closureID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrFacilityNotFound):
			h.logger.Warn("DELETE /facilities/{id}/schedule/closures/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, schedule.ErrClosureNotFound):
			h.logger.Warn("DELETE /facilities/{id}/schedule/closures/{id} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgClosureNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /facilities/{id}/schedule/closures/{id} - Access denied: facility_id=%d, user_id=%d", facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /facilities/{id}/schedule/closures/{id} - Failed to delete closure: closure_id=%d, error=%v", closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /facilities/{id}/schedule/closures/{id} - Closure deleted: facility_id=%d, user_id=%d, closure_id=%d",
		facilityID, userID, closureID)
	w.WriteHeader(http.StatusNoContent)
}
