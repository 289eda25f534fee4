package model

// AreaType is a room category offered by the storefront.
type AreaType string

const (
	AreaKitchen    AreaType = "Kitchen"
	AreaBedroom    AreaType = "Bedroom"
	AreaBathroom   AreaType = "Bathroom"
	AreaLivingRoom AreaType = "Living Room"
	AreaBalcony    AreaType = "Balcony"
	AreaElevation  AreaType = "Elevation"
	AreaParking    AreaType = "Parking"
	AreaTotalFloor AreaType = "Total Floor"
)

// AreaTypes lists the room categories in menu order.
var AreaTypes = []AreaType{
	AreaKitchen,
	AreaBedroom,
	AreaBathroom,
	AreaLivingRoom,
	AreaBalcony,
	AreaElevation,
	AreaParking,
	AreaTotalFloor,
}

// AllowsHighlight reports whether highlight tiles may be ordered for the area.
func (a AreaType) AllowsHighlight() bool {
	return a == AreaKitchen
}

// Allows reports whether an application kind may be used in the area.
func (a AreaType) Allows(kind ApplicationKind) bool {
	if kind == KindHighlight {
		return a.AllowsHighlight()
	}
	return true
}

// PermittedKinds returns the application kinds offered for the area.
func (a AreaType) PermittedKinds() []ApplicationKind {
	kinds := []ApplicationKind{KindFloor, KindWall, KindTotalArea}
	if a.AllowsHighlight() {
		kinds = append(kinds, KindHighlight)
	}
	return kinds
}

// RoomInput is an immutable snapshot of one room and its enabled applications,
// in the order the user enabled them.
type RoomInput struct {
	Name         string
	AreaType     AreaType
	Applications []ApplicationInput
}

// SkippedApplication records an application that contributed nothing because
// its inputs were unusable.
type SkippedApplication struct {
	Position int             `json:"position"`
	Kind     ApplicationKind `json:"kind"`
	Reason   string          `json:"reason"`
}

// RoomResult holds per-room totals. Totals are always the sums of
// ApplicationResults.
//
// @Description Calculated totals for one room
type RoomResult struct {
	RoomName           string               `json:"name" example:"Kitchen 1"`
	AreaType           AreaType             `json:"areaType" example:"Kitchen"`
	ApplicationResults []ApplicationResult  `json:"items"`
	TotalAreaSqFt      float64              `json:"totalArea" example:"128"`
	TotalCostRupees    float64              `json:"totalCost" example:"6400"`
	TotalWeightKg      float64              `json:"totalWeight" example:"208"`
	Skipped            []SkippedApplication `json:"skipped,omitempty"`
} // @name RoomResult

// EstimateResult is the customer-facing estimate over every selected room.
//
// @Description Final estimate across all rooms
type EstimateResult struct {
	RoomResults         []RoomResult `json:"rooms"`
	TotalAreaSqFt       float64      `json:"totalArea" example:"128"`
	TotalWeightKg       float64      `json:"totalWeight" example:"208"`
	TileCostRupees      float64      `json:"totalTileCost" example:"6400"`
	LoadingChargeRupees float64      `json:"loadingCharges" example:"60"`
	GrandTotalRupees    float64      `json:"totalAmount" example:"6460"`
} // @name EstimateResult
