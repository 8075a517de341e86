package create_closure

import (
	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/internal/service/schedule/models"
)

// CreateClosureRequest is the HTTP request model.
type CreateClosureRequest struct {
	AppointmentTypeID *int64 `json:"appointmentTypeId,omitempty"`
	StartDate         string `json:"startDate"` // "2026-12-24"
	EndDate           string `json:"endDate"`   // "2026-12-26"
	Reason            string `json:"reason"`
}

// ToServiceInput converts the HTTP request into the service model.
func (r *CreateClosureRequest) ToServiceInput() models.ClosureInput {
	return models.ClosureInput{
		AppointmentTypeID: r.AppointmentTypeID,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Reason:            r.Reason,
	}
}

// ClosureResponse is the HTTP response model.
type ClosureResponse struct {
	ID                int64  `json:"id"`
	Level             string `json:"level"`
	AppointmentTypeID *int64 `json:"appointmentTypeId,omitempty"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	Reason            string `json:"reason"`
}

// FromDomainClosure converts a created closure into the HTTP model.
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	return &ClosureResponse{
		ID:                c.ID,
		Level:             string(c.Level()),
		AppointmentTypeID: c.AppointmentTypeID,
		StartDate:         c.StartDate.Format(domain.DateFormat),
		EndDate:           c.EndDate.Format(domain.DateFormat),
		Reason:            c.Reason,
	}
}
