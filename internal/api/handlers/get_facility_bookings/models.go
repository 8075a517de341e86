package get_facility_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/haulport/DockSlotService/internal/api/handlers/models"
	"github.com/haulport/DockSlotService/internal/domain"
	serviceModels "github.com/haulport/DockSlotService/internal/service/bookings/models"
)

// FacilityBookingsResponse is the HTTP response model.
type FacilityBookingsResponse struct {
	FacilityID int64                     `json:"facilityId"`
	Bookings   []*models.BookingResponse `json:"bookings"`
}

// ParseFilter builds the service filter from query parameters.
func ParseFilter(facilityID int64, query url.Values) (serviceModels.FacilityBookingsFilter, error) {
	filter := serviceModels.FacilityBookingsFilter{FacilityID: facilityID}

	if typeStr := query.Get("appointmentTypeId"); typeStr != "" {
		typeID, err := strconv.ParseInt(typeStr, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.AppointmentTypeID = &typeID
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		status := domain.BookingStatus(statusStr)
		filter.Status = &status
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return filter, err
		}
		filter.IncludeInactive = include
	}

	return filter, nil
}
