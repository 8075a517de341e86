package cancel_booking

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
