package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tileworks/tile-estimator/internal/catalog"
	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/logger"
	"github.com/tileworks/tile-estimator/internal/metrics"
)

// ErrKindNotPermitted is returned for an application kind the room's area
// type does not offer. The application is skipped.
var ErrKindNotPermitted = errors.New("application type not permitted for area")

// Skip reasons reported in metrics and in RoomResult.Skipped.
const (
	SkipReasonUnknownSpec  = "unknown_tile_spec"
	SkipReasonInvalidInput = "invalid_input"
	SkipReasonNotPermitted = "not_permitted"
)

// RoomAggregator runs every application of a room through the calculator
// and sums what survives.
type RoomAggregator struct {
	calc TileCalculator
	log  zerolog.Logger
}

// NewRoomAggregator creates a RoomAggregator. A nil calculator uses the
// catalog-backed default.
func NewRoomAggregator(calc TileCalculator) *RoomAggregator {
	if calc == nil {
		calc = NewTileCalculatorService()
	}
	return &RoomAggregator{
		calc: calc,
		log:  logger.Component("room_aggregator"),
	}
}

// Aggregate computes a room. Results keep the order of room.Applications.
// Skipped applications contribute nothing and are listed in Skipped; only a
// malformed application fails the whole room.
func (a *RoomAggregator) Aggregate(room model.RoomInput) (model.RoomResult, error) {
	result := model.RoomResult{
		RoomName:           room.Name,
		AreaType:           room.AreaType,
		ApplicationResults: make([]model.ApplicationResult, 0, len(room.Applications)),
	}

	for i, app := range room.Applications {
		if app != nil && !room.AreaType.Allows(app.Kind()) {
			a.skip(&result, i, app.Kind(), SkipReasonNotPermitted,
				fmt.Errorf("%w: %s in %s", ErrKindNotPermitted, app.Kind(), room.AreaType))
			continue
		}

		res, err := a.calc.Calculate(app)
		switch {
		case err == nil:
		case errors.Is(err, catalog.ErrUnknownTileSpec):
			a.skip(&result, i, app.Kind(), SkipReasonUnknownSpec, err)
			continue
		case errors.Is(err, ErrInvalidInput):
			a.skip(&result, i, app.Kind(), SkipReasonInvalidInput, err)
			continue
		default:
			return model.RoomResult{}, fmt.Errorf("room %q application %d: %w", room.Name, i, err)
		}

		result.ApplicationResults = append(result.ApplicationResults, res)
		result.TotalAreaSqFt += res.CoveredAreaSqFt
		result.TotalCostRupees += res.CostRupees
		result.TotalWeightKg += res.WeightKg
	}

	return result, nil
}

func (a *RoomAggregator) skip(result *model.RoomResult, position int, kind model.ApplicationKind, reason string, err error) {
	result.Skipped = append(result.Skipped, model.SkippedApplication{
		Position: position,
		Kind:     kind,
		Reason:   err.Error(),
	})
	metrics.RecordSkippedApplication(string(kind), reason)
	a.log.Debug().
		Err(err).
		Str("room", result.RoomName).
		Str("kind", string(kind)).
		Int("position", position).
		Msg("application skipped")
}
