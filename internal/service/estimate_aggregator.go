package service

import (
	"math"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// Loading charge ladder: a quarter rupee per kilogram, rounded up to the
// next ten rupees.
const (
	loadingRatePerKg = 0.25
	loadingStep      = 10.0
)

// EstimateAggregator folds room results into the customer-facing estimate.
type EstimateAggregator struct{}

// NewEstimateAggregator creates an EstimateAggregator.
func NewEstimateAggregator() *EstimateAggregator {
	return &EstimateAggregator{}
}

// Aggregate sums the rooms and applies the loading charge. It depends only on
// its argument, so calling it twice on the same rooms gives the same result.
func (EstimateAggregator) Aggregate(rooms []model.RoomResult) model.EstimateResult {
	est := model.EstimateResult{
		RoomResults: make([]model.RoomResult, len(rooms)),
	}
	copy(est.RoomResults, rooms)

	for _, r := range rooms {
		est.TotalAreaSqFt += r.TotalAreaSqFt
		est.TileCostRupees += r.TotalCostRupees
		est.TotalWeightKg += r.TotalWeightKg
	}

	est.LoadingChargeRupees = LoadingCharge(est.TotalWeightKg)
	est.GrandTotalRupees = roundHalfUp(est.TileCostRupees + est.LoadingChargeRupees)
	return est
}

// LoadingCharge returns the loading charge in rupees for a total weight.
func LoadingCharge(weightKg float64) float64 {
	return math.Ceil(weightKg*loadingRatePerKg/loadingStep) * loadingStep
}

// roundHalfUp rounds .5 toward positive infinity, matching how totals are
// printed on receipts.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
