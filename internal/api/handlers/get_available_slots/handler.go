package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haulport/DockSlotService/internal/api/handlers"
	"github.com/haulport/DockSlotService/internal/api/middleware"
	getAvailableSlots "github.com/haulport/DockSlotService/internal/usecase/get_available_slots"
)

const (
	msgInvalidOrgID        = "invalid organization ID"
	msgInvalidFacilityID   = "invalid facility ID"
	msgInvalidTypeID       = "invalid appointment type ID"
	msgMissingTypeID       = "appointment type ID is required"
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInterval     = "invalid slot interval, expected 15, 30 or 60"
	msgMissingUserID       = "missing user ID"
	msgPastDate            = "date must not be in the past"
	msgOrgNotFound         = "organization not found"
	msgFacilityNotFound    = "facility not found"
	msgTypeNotFound        = "appointment type not found"
	msgInvalidTypeConfig   = "appointment type has an invalid slot configuration"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{orgId}/facilities/{facilityId}/available-slots
// Query params: appointmentTypeId (required), date (required, YYYY-MM-DD),
// interval (optional, minutes).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orgID, err := strconv.ParseInt(vars["orgId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	typeIDStr := r.URL.Query().Get("appointmentTypeId")
	if typeIDStr == "" {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Missing appointment type ID")
		handlers.RespondBadRequest(w, msgMissingTypeID)
		return
	}
	typeID, err := strconv.ParseInt(typeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Invalid appointment type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTypeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	intervalMinutes := 0
	if intervalStr := r.URL.Query().Get("interval"); intervalStr != "" {
		intervalMinutes, err = strconv.Atoi(intervalStr)
		if err != nil {
			h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)
			return
		}
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, orgID, facilityID, typeID, dateStr, intervalMinutes)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrOrganizationNotFound):
			h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Organization not found: org_id=%d", orgID)
			handlers.RespondNotFound(w, msgOrgNotFound)

		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Facility not found: org_id=%d, facility_id=%d",
				orgID, facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrAppointmentTypeNotFound):
			h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Appointment type not found: facility_id=%d, type_id=%d",
				facilityID, typeID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Past or invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /organizations/{id}/facilities/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, getAvailableSlots.ErrInvalidConfiguration):
			h.logger.Error("GET /organizations/{id}/facilities/{id}/available-slots - Invalid type configuration: type_id=%d, error=%v",
				typeID, err)
			handlers.RespondConflict(w, msgInvalidTypeConfig)

		default:
			h.logger.Error("GET /organizations/{id}/facilities/{id}/available-slots - Failed to get slots: org_id=%d, facility_id=%d, type_id=%d, error=%v",
				orgID, facilityID, typeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /organizations/{id}/facilities/{id}/available-slots - Slots retrieved: org_id=%d, facility_id=%d, type_id=%d, slots_count=%d",
		orgID, facilityID, typeID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
