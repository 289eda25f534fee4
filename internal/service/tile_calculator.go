package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tileworks/tile-estimator/internal/catalog"
	"github.com/tileworks/tile-estimator/internal/domain/model"
)

var (
	// ErrInvalidInput marks an application whose fields are missing, zero,
	// negative or non-numeric. The application is skipped.
	ErrInvalidInput = errors.New("invalid application input")

	// ErrMalformedApplication marks an input that is not one of the known
	// variants. It is a caller bug, not user input.
	ErrMalformedApplication = errors.New("malformed application")
)

// Inch divisors used by the two specs whose laying pattern is measured in
// inches rather than by the catalog's nominal feet.
const (
	inchesPerFoot        = 12.0
	sixteenInchTile      = 16.0
	largeElevationLength = 63.0
	largeElevationCross  = 31.5
)

// maxQuantity caps every tile and box count. Larger figures are rejected as
// input errors instead of wrapping around int.
const maxQuantity = math.MaxInt32

// SpecLookup resolves a tile spec id.
type SpecLookup func(id string) (model.TileSpec, error)

// TileCalculator computes one tile application.
type TileCalculator interface {
	Calculate(in model.ApplicationInput) (model.ApplicationResult, error)
}

// CalculatorOption configures a TileCalculatorService.
type CalculatorOption func(*TileCalculatorService)

// TileCalculatorService implements TileCalculator. It is stateless and safe
// for concurrent use.
type TileCalculatorService struct {
	lookup SpecLookup
}

// NewTileCalculatorService creates a calculator backed by the static catalog.
func NewTileCalculatorService(opts ...CalculatorOption) *TileCalculatorService {
	s := &TileCalculatorService{lookup: catalog.Lookup}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSpecLookup replaces the catalog lookup.
func WithSpecLookup(lookup SpecLookup) CalculatorOption {
	return func(s *TileCalculatorService) {
		if lookup != nil {
			s.lookup = lookup
		}
	}
}

// Calculate computes quantities for one application. Errors wrapping
// ErrInvalidInput or catalog.ErrUnknownTileSpec mean the application should
// be skipped; ErrMalformedApplication means the input itself is broken.
func (s *TileCalculatorService) Calculate(in model.ApplicationInput) (model.ApplicationResult, error) {
	var calc func(model.TileSpec) (model.ApplicationResult, error)
	switch v := in.(type) {
	case model.HighlightInput:
		calc = func(spec model.TileSpec) (model.ApplicationResult, error) { return calculateHighlight(v, spec) }
	case model.FloorInput:
		calc = func(spec model.TileSpec) (model.ApplicationResult, error) { return calculateFloor(v, spec) }
	case model.WallInput:
		calc = func(spec model.TileSpec) (model.ApplicationResult, error) { return calculateWall(v, spec) }
	case model.TotalAreaInput:
		if err := validateTotalArea(v); err != nil {
			return model.ApplicationResult{}, err
		}
		calc = func(spec model.TileSpec) (model.ApplicationResult, error) { return calculateTotalArea(v, spec) }
	case nil:
		return model.ApplicationResult{}, fmt.Errorf("%w: nil application", ErrMalformedApplication)
	default:
		return model.ApplicationResult{}, fmt.Errorf("%w: unsupported type %T", ErrMalformedApplication, in)
	}

	common := in.Common()
	spec, err := s.lookup(common.TileSpecID)
	if err != nil {
		return model.ApplicationResult{}, err
	}
	if !model.IsPositive(common.PricePerSqFt) {
		return model.ApplicationResult{}, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	return calc(spec)
}

func validateTotalArea(in model.TotalAreaInput) error {
	if in.Surface != model.SurfaceFloor && in.Surface != model.SurfaceWall {
		return fmt.Errorf("%w: unknown surface %q", ErrMalformedApplication, in.Surface)
	}
	if in.Index < 1 {
		return fmt.Errorf("%w: item index must start at 1", ErrMalformedApplication)
	}
	return nil
}

// calculateHighlight prices loose tiles by the fraction of a box they fill,
// while the box count is rounded up.
func calculateHighlight(in model.HighlightInput, spec model.TileSpec) (model.ApplicationResult, error) {
	if in.TileCount <= 0 {
		return model.ApplicationResult{}, fmt.Errorf("%w: tile count must be positive", ErrInvalidInput)
	}

	pcs := float64(spec.PiecesPerBox)
	count := float64(in.TileCount)
	area := count / pcs * spec.CoveragePerBoxSqFt

	boxes, err := ceilCount(count, pcs)
	if err != nil {
		return model.ApplicationResult{}, err
	}

	return model.ApplicationResult{
		Kind:            model.KindHighlight,
		Label:           "Highlight Tile",
		TileSpecID:      spec.ID,
		DesignLabel:     in.DesignLabel,
		PricePerSqFt:    in.PricePerSqFt,
		TileCount:       in.TileCount,
		CoveredAreaSqFt: area,
		TotalBoxes:      boxes,
		CostRupees:      area * in.PricePerSqFt,
		WeightKg:        count * spec.WeightPerTileKg(),
	}, nil
}

func calculateFloor(in model.FloorInput, spec model.TileSpec) (model.ApplicationResult, error) {
	if !model.IsPositive(in.LengthFt) || !model.IsPositive(in.WidthFt) {
		return model.ApplicationResult{}, fmt.Errorf("%w: length and width must be positive", ErrInvalidInput)
	}

	a, b, err := tilesPerAxis(spec, in.LengthFt, in.WidthFt)
	if err != nil {
		return model.ApplicationResult{}, err
	}
	boxes, err := ceilCount(float64(a)*float64(b), float64(spec.PiecesPerBox))
	if err != nil {
		return model.ApplicationResult{}, err
	}
	area := float64(boxes) * spec.CoveragePerBoxSqFt

	return model.ApplicationResult{
		Kind:            model.KindFloor,
		Label:           "Floor Tile",
		TileSpecID:      spec.ID,
		DesignLabel:     in.DesignLabel,
		Dimensions:      dimensions(in.LengthFt, in.WidthFt),
		PricePerSqFt:    in.PricePerSqFt,
		TilesAlongA:     a,
		TilesAlongB:     b,
		TotalBoxes:      boxes,
		CoveredAreaSqFt: area,
		CostRupees:      area * in.PricePerSqFt,
		WeightKg:        float64(boxes) * spec.BoxWeightKg,
	}, nil
}

// calculateWall rounds each band to whole boxes on its own, so the total can
// exceed a single ceil over all rows.
func calculateWall(in model.WallInput, spec model.TileSpec) (model.ApplicationResult, error) {
	if !model.IsPositive(in.LengthFt) || !model.IsPositive(in.HeightFt) {
		return model.ApplicationResult{}, fmt.Errorf("%w: length and height must be positive", ErrInvalidInput)
	}
	if in.DarkRows < 0 || in.HighlightRows < 0 || (in.LightRows != nil && *in.LightRows < 0) {
		return model.ApplicationResult{}, fmt.Errorf("%w: row counts must not be negative", ErrInvalidInput)
	}

	if in.DarkRows > maxQuantity || in.HighlightRows > maxQuantity || (in.LightRows != nil && *in.LightRows > maxQuantity) {
		return model.ApplicationResult{}, fmt.Errorf("%w: row counts exceed %d", ErrInvalidInput, maxQuantity)
	}

	a, b, err := tilesPerAxis(spec, in.LengthFt, in.HeightFt)
	if err != nil {
		return model.ApplicationResult{}, err
	}

	light := max(0, b-(in.DarkRows+in.HighlightRows))
	if in.LightRows != nil {
		light = *in.LightRows
	}

	pcs := float64(spec.PiecesPerBox)
	var bands [3]int
	for i, rows := range []int{in.DarkRows, in.HighlightRows, light} {
		if bands[i], err = ceilCount(float64(rows)*float64(a), pcs); err != nil {
			return model.ApplicationResult{}, err
		}
	}
	darkBoxes, highlightBoxes, lightBoxes := bands[0], bands[1], bands[2]
	boxes := darkBoxes + highlightBoxes + lightBoxes
	if boxes > maxQuantity {
		return model.ApplicationResult{}, fmt.Errorf("%w: box count exceeds %d", ErrInvalidInput, maxQuantity)
	}
	area := float64(boxes) * spec.CoveragePerBoxSqFt

	return model.ApplicationResult{
		Kind:            model.KindWall,
		Label:           "Wall Tile",
		TileSpecID:      spec.ID,
		DesignLabel:     in.DesignLabel,
		Dimensions:      dimensions(in.LengthFt, in.HeightFt),
		PricePerSqFt:    in.PricePerSqFt,
		TilesAlongA:     a,
		TilesAlongB:     b,
		DarkRows:        in.DarkRows,
		HighlightRows:   in.HighlightRows,
		LightRows:       light,
		DarkBoxes:       darkBoxes,
		HighlightBoxes:  highlightBoxes,
		LightBoxes:      lightBoxes,
		TotalBoxes:      boxes,
		CoveredAreaSqFt: area,
		CostRupees:      area * in.PricePerSqFt,
		WeightKg:        float64(boxes) * spec.BoxWeightKg,
	}, nil
}

func calculateTotalArea(in model.TotalAreaInput, spec model.TileSpec) (model.ApplicationResult, error) {
	label := "Total Floor " + strconv.Itoa(in.Index)
	if in.Surface == model.SurfaceWall {
		label = "Total Wall " + strconv.Itoa(in.Index)
	}
	if !model.IsPositive(in.AreaSqFt) {
		return model.ApplicationResult{}, fmt.Errorf("%w: area must be positive", ErrInvalidInput)
	}

	boxes, err := ceilCount(in.AreaSqFt, spec.CoveragePerBoxSqFt)
	if err != nil {
		return model.ApplicationResult{}, err
	}

	return model.ApplicationResult{
		Kind:            model.KindTotalArea,
		Label:           label,
		TileSpecID:      spec.ID,
		DesignLabel:     in.DesignLabel,
		PricePerSqFt:    in.PricePerSqFt,
		TotalBoxes:      boxes,
		CoveredAreaSqFt: float64(boxes) * spec.CoveragePerBoxSqFt,
		CostRupees:      float64(boxes) * (in.PricePerSqFt * spec.CoveragePerBoxSqFt),
		WeightKg:        float64(boxes) * spec.BoxWeightKg,
	}, nil
}

// tilesPerAxis returns the tile counts along the primary and cross axes.
//
// The 16x16 and 2.75x5.25 specs use fixed inch divisors. For 2.75x5.25 the
// divisors (63in along the length, 31.5in across) do not match the catalog's
// nominal 2.75ft x 5.25ft; the figures are kept as the store quotes them.
func tilesPerAxis(spec model.TileSpec, lengthFt, crossFt float64) (int, int, error) {
	var a, b int
	var errA, errB error
	switch spec.ID {
	case catalog.SpecSixteenInch:
		a, errA = ceilCount(lengthFt*inchesPerFoot, sixteenInchTile)
		b, errB = ceilCount(crossFt*inchesPerFoot, sixteenInchTile)
	case catalog.SpecLargeElevation:
		a, errA = ceilCount(lengthFt*inchesPerFoot, largeElevationLength)
		b, errB = ceilCount(crossFt*inchesPerFoot, largeElevationCross)
	default:
		a, errA = ceilCount(lengthFt, spec.TileWidthFt)
		b, errB = ceilCount(crossFt, spec.TileHeightFt)
	}
	if err := errors.Join(errA, errB); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// ceilCount rounds n/d up to a whole count no larger than maxQuantity.
func ceilCount(n, d float64) (int, error) {
	q := math.Ceil(n / d)
	if math.IsNaN(q) || q > maxQuantity {
		return 0, fmt.Errorf("%w: quantity exceeds %d", ErrInvalidInput, maxQuantity)
	}
	return int(q), nil
}

func dimensions(length, cross float64) string {
	return strconv.FormatFloat(length, 'f', -1, 64) + "x" + strconv.FormatFloat(cross, 'f', -1, 64)
}
