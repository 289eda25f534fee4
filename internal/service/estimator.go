package service

import (
	"time"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/metrics"
)

// Estimator turns a full set of room selections into an estimate.
type Estimator interface {
	Estimate(rooms []model.RoomInput) (model.EstimateResult, error)
}

// EstimatorService recomputes every room from scratch on each call; no
// previous result is reused.
type EstimatorService struct {
	rooms    *RoomAggregator
	estimate *EstimateAggregator
}

// NewEstimatorService wires the default calculator and aggregators.
func NewEstimatorService(opts ...CalculatorOption) *EstimatorService {
	return &EstimatorService{
		rooms:    NewRoomAggregator(NewTileCalculatorService(opts...)),
		estimate: NewEstimateAggregator(),
	}
}

// Estimate computes every room and the final totals.
func (s *EstimatorService) Estimate(rooms []model.RoomInput) (model.EstimateResult, error) {
	start := time.Now()

	results := make([]model.RoomResult, 0, len(rooms))
	for _, room := range rooms {
		res, err := s.rooms.Aggregate(room)
		if err != nil {
			metrics.RecordEstimateCalculation(time.Since(start), "error", 0)
			return model.EstimateResult{}, err
		}
		results = append(results, res)
	}

	est := s.estimate.Aggregate(results)
	metrics.RecordEstimateCalculation(time.Since(start), "success", est.GrandTotalRupees)
	return est, nil
}
