package warehouseservice

// Organization is the tenant that owns facilities and dock schedules.
type Organization struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Active     bool    `json:"active"`
	ManagerIDs []int64 `json:"managerIds"`
}

// Facility is one warehouse location of an organization.
type Facility struct {
	ID             int64   `json:"id"`
	OrganizationID int64   `json:"organizationId"`
	Name           string  `json:"name"`
	Timezone       string  `json:"timezone"` // IANA name, e.g. "America/New_York"
	DockCount      int     `json:"dockCount"`
	ManagerIDs     []int64 `json:"managerIds"`
}

// AppointmentType describes one kind of dock appointment bookable at a
// facility, including the capacity settings the slot calculator needs.
type AppointmentType struct {
	ID              int64   `json:"id"`
	FacilityID      int64   `json:"facilityId"`
	Name            string  `json:"name"`
	DockName        *string `json:"dockName,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	BufferMinutes   int     `json:"bufferMinutes"`
	MaxConcurrent   int     `json:"maxConcurrent"`
	MaySpanBreak    bool    `json:"maySpanBreak"`
	Active          bool    `json:"active"`
}
