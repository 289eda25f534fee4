package model

// ApplicationKind identifies how a tile application is measured.
type ApplicationKind string

const (
	// KindFloor is a floor laid from length and width.
	KindFloor ApplicationKind = "floor"
	// KindWall is a wall laid from length and height with dark/highlight/light row bands.
	KindWall ApplicationKind = "wall"
	// KindHighlight is a loose count of feature tiles.
	KindHighlight ApplicationKind = "highlight"
	// KindTotalArea is a pre-measured area in square feet.
	KindTotalArea ApplicationKind = "total_area"
)

// Surface tells a pre-measured area item whether it covers a floor or a wall.
type Surface string

const (
	SurfaceFloor Surface = "floor"
	SurfaceWall  Surface = "wall"
)

// ApplicationCommon holds the fields shared by every application variant.
type ApplicationCommon struct {
	TileSpecID   string
	PricePerSqFt float64
	DesignLabel  string
}

// ApplicationInput is one tile application inside one room. The set of
// implementations is closed: FloorInput, WallInput, HighlightInput and
// TotalAreaInput.
type ApplicationInput interface {
	Kind() ApplicationKind
	Common() ApplicationCommon
	application()
}

// FloorInput covers a floor of LengthFt by WidthFt.
type FloorInput struct {
	ApplicationCommon
	LengthFt float64
	WidthFt  float64
}

// WallInput covers a wall of LengthFt by HeightFt. LightRows is nil when the
// light band should take whatever rows the dark and highlight bands leave.
type WallInput struct {
	ApplicationCommon
	LengthFt      float64
	HeightFt      float64
	DarkRows      int
	HighlightRows int
	LightRows     *int
}

// HighlightInput is a counted set of feature tiles.
type HighlightInput struct {
	ApplicationCommon
	TileCount int
}

// TotalAreaInput is a pre-measured area. Index is the 1-based position among
// the room's items of the same surface and only affects the label.
type TotalAreaInput struct {
	ApplicationCommon
	Surface  Surface
	Index    int
	AreaSqFt float64
}

func (FloorInput) Kind() ApplicationKind     { return KindFloor }
func (WallInput) Kind() ApplicationKind      { return KindWall }
func (HighlightInput) Kind() ApplicationKind { return KindHighlight }
func (TotalAreaInput) Kind() ApplicationKind { return KindTotalArea }

func (in FloorInput) Common() ApplicationCommon     { return in.ApplicationCommon }
func (in WallInput) Common() ApplicationCommon      { return in.ApplicationCommon }
func (in HighlightInput) Common() ApplicationCommon { return in.ApplicationCommon }
func (in TotalAreaInput) Common() ApplicationCommon { return in.ApplicationCommon }

func (FloorInput) application()     {}
func (WallInput) application()      {}
func (HighlightInput) application() {}
func (TotalAreaInput) application() {}

// ApplicationResult is the calculated outcome of a single application.
// Axis and band fields are zero for variants that do not produce them.
//
// @Description Calculated quantities for one tile application
type ApplicationResult struct {
	Kind            ApplicationKind `json:"kind" example:"floor"`
	Label           string          `json:"label" example:"Floor Tile"`
	TileSpecID      string          `json:"tileSpecId" example:"4"`
	DesignLabel     string          `json:"design,omitempty" example:"D-104"`
	Dimensions      string          `json:"dimensions,omitempty" example:"10x12"`
	PricePerSqFt    float64         `json:"price" example:"50"`
	CoveredAreaSqFt float64         `json:"area" example:"128"`
	TotalBoxes      int             `json:"totalBoxes" example:"8"`
	CostRupees      float64         `json:"cost" example:"6400"`
	WeightKg        float64         `json:"weight" example:"208"`
	TileCount       int             `json:"count,omitempty"`
	TilesAlongA     int             `json:"tilesPerWidth,omitempty" example:"5"`
	TilesAlongB     int             `json:"tilesPerLength,omitempty" example:"6"`
	DarkRows        int             `json:"darkRows,omitempty"`
	HighlightRows   int             `json:"highlightRows,omitempty"`
	LightRows       int             `json:"lightRows,omitempty"`
	DarkBoxes       int             `json:"darkBoxes,omitempty"`
	HighlightBoxes  int             `json:"highlightBoxes,omitempty"`
	LightBoxes      int             `json:"lightBoxes,omitempty"`
} // @name ApplicationResult
