// Package catalog holds the fixed set of tile sizes the store sells.
package catalog

import (
	"errors"
	"fmt"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// ErrUnknownTileSpec is returned when an id is not in the catalog.
var ErrUnknownTileSpec = errors.New("unknown tile spec")

// Ids that switch the axis conversion to fixed inch divisors.
const (
	SpecSixteenInch    = "2.25"
	SpecLargeElevation = "2.75x5.25"
)

var specs = []model.TileSpec{
	{ID: "1x1_9", PiecesPerBox: 9, BoxWeightKg: 10.5, TileWidthFt: 1, TileHeightFt: 1, CoveragePerBoxSqFt: 9, DisplayName: "1 x 1 (9)"},
	{ID: "4x2_3", PiecesPerBox: 3, BoxWeightKg: 39, TileWidthFt: 4, TileHeightFt: 2, CoveragePerBoxSqFt: 24, DisplayName: "4 x 2 (3)"},
	{ID: "1", PiecesPerBox: 8, BoxWeightKg: 12.5, TileWidthFt: 1, TileHeightFt: 1, CoveragePerBoxSqFt: 8, DisplayName: "1 x 1"},
	{ID: "2.25", PiecesPerBox: 5, BoxWeightKg: 19, TileWidthFt: 1.5, TileHeightFt: 1.5, CoveragePerBoxSqFt: 8.9, DisplayName: "16 x 16"},
	{ID: "4", PiecesPerBox: 4, BoxWeightKg: 26, TileWidthFt: 2, TileHeightFt: 2, CoveragePerBoxSqFt: 16, DisplayName: "2 x 2"},
	{ID: "8", PiecesPerBox: 2, BoxWeightKg: 26, TileWidthFt: 4, TileHeightFt: 2, CoveragePerBoxSqFt: 16, DisplayName: "4 x 2"},
	{ID: "1.25", PiecesPerBox: 8, BoxWeightKg: 9, TileWidthFt: 1.25, TileHeightFt: 0.83, CoveragePerBoxSqFt: 8.33, DisplayName: "15 x 10"},
	{ID: "1.5", PiecesPerBox: 6, BoxWeightKg: 10.5, TileWidthFt: 1.5, TileHeightFt: 1, CoveragePerBoxSqFt: 9, DisplayName: "18 x 12"},
	{ID: "2", PiecesPerBox: 5, BoxWeightKg: 12.5, TileWidthFt: 2, TileHeightFt: 1, CoveragePerBoxSqFt: 10, DisplayName: "2 x 1"},
	{ID: "2.75x5.25", PiecesPerBox: 2, BoxWeightKg: 52, TileWidthFt: 2.75, TileHeightFt: 5.25, CoveragePerBoxSqFt: 28, DisplayName: "2.75 x 5.25"},
}

var byID = func() map[string]model.TileSpec {
	m := make(map[string]model.TileSpec, len(specs))
	for _, s := range specs {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the spec registered under id.
func Lookup(id string) (model.TileSpec, error) {
	s, ok := byID[id]
	if !ok {
		return model.TileSpec{}, fmt.Errorf("%w: %q", ErrUnknownTileSpec, id)
	}
	return s, nil
}

// All returns every spec in menu order. The slice is a copy.
func All() []model.TileSpec {
	out := make([]model.TileSpec, len(specs))
	copy(out, specs)
	return out
}
