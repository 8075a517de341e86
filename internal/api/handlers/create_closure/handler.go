package create_closure

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
	msgInvalidFacilityID  = "invalid facility ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgFacilityNotFound   = "facility not found"
	msgForbidden          = "access denied"
	msgInvalidData        = "invalid closure data"
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

// Handle POST /api/v1/facilities/{facilityId}/schedule/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /facilities/{id}/schedule/closures - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /facilities/{id}/schedule/closures - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities/{id}/schedule/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	closure, err := h.service.CreateClosure(r.Context(), userID, facilityID, req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrFacilityNotFound):
			h.logger.Warn("POST /facilities/{id}/schedule/closures - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /facilities/{id}/schedule/closures - Access denied: facility_id=%d, user_id=%d", facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /facilities/{id}/schedule/closures - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /facilities/{id}/schedule/closures - Failed to create closure: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities/{id}/schedule/closures - Closure created: facility_id=%d, user_id=%d, closure_id=%d",
		facilityID, userID, closure.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainClosure(closure))
}
