package packets

// CoordinatesRequest carries a bare lat/lng pair. Pointers keep gin's
// required binding from rejecting the legitimate zero coordinate.
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// ZakatRequest is the wealth assessment form. Missing fields default to
// zero, matching the calculator UI.
type ZakatRequest struct {
	Cash        float64 `json:"cash" binding:"gte=0"`
	Savings     float64 `json:"savings" binding:"gte=0"`
	Gold        float64 `json:"gold" binding:"gte=0"`
	Silver      float64 `json:"silver" binding:"gte=0"`
	Business    float64 `json:"business" binding:"gte=0"`
	Investments float64 `json:"investments" binding:"gte=0"`
	Debts       float64 `json:"debts" binding:"gte=0"`
}

// CreateStatusCheckRequest registers a frontend heartbeat.
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}
