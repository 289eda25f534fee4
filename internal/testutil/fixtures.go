// Package testutil provides fixtures and testcontainers helpers shared by tests.
package testutil

import (
	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// KitchenFloor is a 10ft x 12ft floor in 2 x 2 tiles at 50 per sq ft:
// 8 boxes, 128 sq ft, 6400 rupees, 208 kg.
func KitchenFloor() model.FloorInput {
	return model.FloorInput{
		ApplicationCommon: model.ApplicationCommon{TileSpecID: "4", PricePerSqFt: 50, DesignLabel: "F-204"},
		LengthFt:          10,
		WidthFt:           12,
	}
}

// KitchenWall is a 10ft x 9ft wall in 1 x 1 tiles with 3 dark and 1
// highlight rows: 4 + 2 + 7 = 13 boxes, 104 sq ft.
func KitchenWall() model.WallInput {
	return model.WallInput{
		ApplicationCommon: model.ApplicationCommon{TileSpecID: "1", PricePerSqFt: 40, DesignLabel: "W-12"},
		LengthFt:          10,
		HeightFt:          9,
		DarkRows:          3,
		HighlightRows:     1,
	}
}

// CustomerDetails returns valid identity details.
func CustomerDetails() model.CustomerDetails {
	return model.CustomerDetails{
		FullName:      "Priya Raman",
		Phone:         "9876543210",
		Address:       "12 Gandhi Road, Madurai",
		Attender:      "Kumar",
		AttenderPhone: "9123456780",
	}
}

// Customer returns an unsaved customer with one kitchen room holding the
// floor and wall fixtures.
func Customer() *model.Customer {
	return model.NewCustomer(CustomerDetails(), model.EstimateResult{
		RoomResults: []model.RoomResult{
			{
				RoomName: "Kitchen 1",
				AreaType: model.AreaKitchen,
				ApplicationResults: []model.ApplicationResult{
					{
						Kind: model.KindFloor, Label: "Floor Tile", TileSpecID: "4", DesignLabel: "F-204",
						Dimensions: "10x12", PricePerSqFt: 50, CoveredAreaSqFt: 128, TotalBoxes: 8,
						CostRupees: 6400, WeightKg: 208, TilesAlongA: 5, TilesAlongB: 6,
					},
					{
						Kind: model.KindWall, Label: "Wall Tile", TileSpecID: "1", DesignLabel: "W-12",
						Dimensions: "10x9", PricePerSqFt: 40, CoveredAreaSqFt: 104, TotalBoxes: 13,
						CostRupees: 4160, WeightKg: 162.5, TilesAlongA: 10, TilesAlongB: 9,
						DarkRows: 3, HighlightRows: 1, LightRows: 5, DarkBoxes: 4, HighlightBoxes: 2, LightBoxes: 7,
					},
				},
				TotalAreaSqFt:   232,
				TotalCostRupees: 10560,
				TotalWeightKg:   370.5,
			},
		},
		TotalAreaSqFt:       232,
		TotalWeightKg:       370.5,
		TileCostRupees:      10560,
		LoadingChargeRupees: 100,
		GrandTotalRupees:    10660,
	})
}
