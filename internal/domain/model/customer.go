package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a saved customer together with the estimate shown to them.
// Field names follow the persisted document shape used by earlier clients.
//
// @Description Saved customer and estimate
type Customer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FullName       string             `bson:"fullname" json:"fullname" example:"Priya Raman"`
	Phone          string             `bson:"phone" json:"phone" example:"9876543210"`
	Address        string             `bson:"address" json:"address" example:"12 Gandhi Road, Madurai"`
	Attender       string             `bson:"attender" json:"attender" example:"Kumar"`
	AttenderPhone  string             `bson:"attenderPhone" json:"attenderPhone" example:"9123456780"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	TotalArea      float64            `bson:"totalArea" json:"totalArea"`
	TotalWeight    float64            `bson:"totalWeight" json:"totalWeight"`
	LoadingCharges float64            `bson:"loadingCharges" json:"loadingCharges"`
	TotalTileCost  float64            `bson:"totalTileCost" json:"totalTileCost"`
	Rooms          []CustomerRoom     `bson:"rooms" json:"rooms"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
} // @name Customer

// CustomerRoom is the stored breakdown of one room.
type CustomerRoom struct {
	Name        string         `bson:"name" json:"name"`
	AreaType    string         `bson:"areaType" json:"areaType"`
	TotalArea   float64        `bson:"totalArea" json:"totalArea"`
	TotalCost   float64        `bson:"totalCost" json:"totalCost"`
	TotalWeight float64        `bson:"totalWeight" json:"totalWeight"`
	Items       []CustomerItem `bson:"items" json:"items"`
} // @name CustomerRoom

// CustomerItem is one stored line item.
type CustomerItem struct {
	Type           string  `bson:"type" json:"type"`
	Design         string  `bson:"design" json:"design"`
	Area           float64 `bson:"area" json:"area"`
	Boxes          int     `bson:"boxes" json:"boxes"`
	Price          float64 `bson:"price" json:"price"`
	Cost           float64 `bson:"cost" json:"cost"`
	Weight         float64 `bson:"weight" json:"weight"`
	Description    string  `bson:"description" json:"description"`
	DarkBoxes      int     `bson:"darkBoxes" json:"darkBoxes"`
	LightBoxes     int     `bson:"lightBoxes" json:"lightBoxes"`
	HighlightBoxes int     `bson:"highlightBoxes" json:"highlightBoxes"`
	TilesPerWidth  int     `bson:"tilesPerWidth" json:"tilesPerWidth"`
	TilesPerLength int     `bson:"tilesPerLength" json:"tilesPerLength"`
} // @name CustomerItem

// CustomerDetails is the identity part of a customer record.
type CustomerDetails struct {
	FullName      string
	Phone         string
	Address       string
	Attender      string
	AttenderPhone string
}

// NewCustomer builds a customer record from identity details and a computed
// estimate. Every room of the estimate is kept, including rooms whose
// applications were all skipped.
func NewCustomer(details CustomerDetails, estimate EstimateResult) *Customer {
	rooms := make([]CustomerRoom, 0, len(estimate.RoomResults))
	for _, room := range estimate.RoomResults {
		items := make([]CustomerItem, 0, len(room.ApplicationResults))
		for _, res := range room.ApplicationResults {
			items = append(items, CustomerItem{
				Type:           res.Label,
				Design:         res.DesignLabel,
				Area:           res.CoveredAreaSqFt,
				Boxes:          res.TotalBoxes,
				Price:          res.PricePerSqFt,
				Cost:           res.CostRupees,
				Weight:         res.WeightKg,
				Description:    res.Dimensions,
				DarkBoxes:      res.DarkBoxes,
				LightBoxes:     res.LightBoxes,
				HighlightBoxes: res.HighlightBoxes,
				TilesPerWidth:  res.TilesAlongA,
				TilesPerLength: res.TilesAlongB,
			})
		}
		rooms = append(rooms, CustomerRoom{
			Name:        room.RoomName,
			AreaType:    string(room.AreaType),
			TotalArea:   room.TotalAreaSqFt,
			TotalCost:   room.TotalCostRupees,
			TotalWeight: room.TotalWeightKg,
			Items:       items,
		})
	}

	return &Customer{
		FullName:       details.FullName,
		Phone:          details.Phone,
		Address:        details.Address,
		Attender:       details.Attender,
		AttenderPhone:  details.AttenderPhone,
		TotalAmount:    estimate.GrandTotalRupees,
		TotalArea:      estimate.TotalAreaSqFt,
		TotalWeight:    estimate.TotalWeightKg,
		LoadingCharges: estimate.LoadingChargeRupees,
		TotalTileCost:  estimate.TileCostRupees,
		Rooms:          rooms,
	}
}
