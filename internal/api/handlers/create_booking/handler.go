package create_booking

import (
	"errors"
	"net/http"

	"github.com/haulport/DockSlotService/internal/api/handlers"
	"github.com/haulport/DockSlotService/internal/api/middleware"
	createBooking "github.com/haulport/DockSlotService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid booking date or start time, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user ID"
	msgOrgNotFound        = "organization not found"
	msgFacilityNotFound   = "facility not found"
	msgTypeNotFound       = "appointment type not found"
	msgInvalidBookingDate = "invalid booking date"
	msgFacilityClosed     = "facility is closed on the requested date"
	msgOutsideHours       = "requested time is outside operating hours"
	msgBreakTime          = "requested time falls into the facility break"
	msgSlotAtCapacity     = "requested slot is fully booked"
	msgInvalidTypeConfig  = "appointment type has an invalid slot configuration"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAtCapacity):
			h.logger.Warn("POST /bookings - Slot at capacity: carrier_id=%d, facility_id=%d, date=%s, start=%s",
				userID, req.FacilityID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotAtCapacity)

		case errors.Is(err, createBooking.ErrOrganizationNotFound):
			h.logger.Warn("POST /bookings - Organization not found: org_id=%d", req.OrganizationID)
			handlers.RespondNotFound(w, msgOrgNotFound)

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: org_id=%d, facility_id=%d",
				req.OrganizationID, req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrAppointmentTypeNotFound):
			h.logger.Warn("POST /bookings - Appointment type not found: facility_id=%d, type_id=%d",
				req.FacilityID, req.AppointmentTypeID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		case errors.Is(err, createBooking.ErrFacilityClosed):
			h.logger.Warn("POST /bookings - Facility closed: facility_id=%d, date=%s", req.FacilityID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgFacilityClosed)

		case errors.Is(err, createBooking.ErrOutsideHours):
			h.logger.Warn("POST /bookings - Outside hours: facility_id=%d, date=%s, start=%s",
				req.FacilityID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgOutsideHours)

		case errors.Is(err, createBooking.ErrBreakTime):
			h.logger.Warn("POST /bookings - Break time: facility_id=%d, date=%s, start=%s",
				req.FacilityID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgBreakTime)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: carrier_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrInvalidConfiguration):
			h.logger.Error("POST /bookings - Invalid type configuration: type_id=%d, error=%v",
				req.AppointmentTypeID, err)
			handlers.RespondConflict(w, msgInvalidTypeConfig)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: carrier_id=%d, facility_id=%d, error=%v",
				userID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, carrier_id=%d, facility_id=%d, date=%s, start=%s",
		result.Booking.ID, userID, req.FacilityID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
