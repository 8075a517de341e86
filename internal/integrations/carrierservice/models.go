package carrierservice

// Truck is the carrier's currently selected vehicle. Its details are
// denormalized onto bookings so dock staff see them even if the carrier
// later changes trucks.
type Truck struct {
	ID          int64  `json:"id"`
	Plate       string `json:"plate"`
	TrailerType string `json:"trailerType"` // dry_van, reefer, flatbed, ...
}
