// Package model defines the core domain entities for the tile estimator.
package model

// TileSpec describes the packing geometry of one tile size.
//
// @Description Tile size packing specification
type TileSpec struct {
	// ID is the catalog key. Persisted estimates are keyed by it.
	ID string `json:"id" example:"4"`
	// PiecesPerBox is the number of tiles packed in one box.
	PiecesPerBox int `json:"piecesPerBox" example:"4"`
	// BoxWeightKg is the shipped weight of one full box.
	BoxWeightKg float64 `json:"boxWeightKg" example:"26"`
	// TileWidthFt is the width of a single tile in feet.
	TileWidthFt float64 `json:"tileWidthFt" example:"2"`
	// TileHeightFt is the height of a single tile in feet.
	TileHeightFt float64 `json:"tileHeightFt" example:"2"`
	// CoveragePerBoxSqFt is the area one box covers once laid.
	CoveragePerBoxSqFt float64 `json:"coveragePerBoxSqFt" example:"16"`
	// DisplayName is the label shown in selection menus.
	DisplayName string `json:"displayName" example:"2 x 2"`
} // @name TileSpec

// WeightPerTileKg returns the weight of a single tile.
func (s TileSpec) WeightPerTileKg() float64 {
	return s.BoxWeightKg / float64(s.PiecesPerBox)
}
