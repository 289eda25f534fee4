// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Form values arrive as
// loosely typed JSON and are converted into the immutable model inputs here.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// FlexNumber holds a numeric form field exactly as it was posted. Clients
// send numbers either as JSON numbers or as strings; both decode here and
// are parsed later with the model's optional-number rules.
type FlexNumber string

// UnmarshalJSON accepts a JSON number, a string or null.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = FlexNumber(s)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("expected number or string, got %s", data)
		}
		*n = FlexNumber(num.String())
	}
	return nil
}

// Positive returns the value when it is a finite number above zero, else 0.
// A zero value makes the calculator skip the application.
func (n FlexNumber) Positive() float64 {
	v, _ := model.ParseOptionalPositiveNumber(string(n))
	return v
}

// Count returns a non-negative whole count. present is false for a blank
// field; an unparseable or negative value yields -1 so the application is
// rejected downstream.
func (n FlexNumber) Count() (count int, present bool) {
	c, present, ok := model.ParseOptionalCount(string(n))
	if !ok {
		return -1, true
	}
	return c, present
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every field problem found in one request.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Details returns the errors keyed by field.
func (errs ValidationErrors) Details() map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func (errs ValidationErrors) orNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplicationRequest is one enabled application inside a room, as posted by
// the storefront form. Which fields matter depends on Type.
//
// @Description One tile application. floor uses length/width, wall uses length/height and row bands, highlight uses count, total_area uses surface/area.
type ApplicationRequest struct {
	Type          string     `json:"type" example:"floor" enums:"floor,wall,highlight,total_area"`
	TileSpecID    string     `json:"tileSpecId" example:"4"`
	Price         FlexNumber `json:"price" swaggertype:"string" example:"50"`
	Design        string     `json:"design,omitempty" example:"F-204"`
	Length        FlexNumber `json:"length,omitempty" swaggertype:"string" example:"10"`
	Width         FlexNumber `json:"width,omitempty" swaggertype:"string" example:"12"`
	Height        FlexNumber `json:"height,omitempty" swaggertype:"string"`
	DarkRows      FlexNumber `json:"darkRows,omitempty" swaggertype:"string"`
	HighlightRows FlexNumber `json:"highlightRows,omitempty" swaggertype:"string"`
	LightRows     FlexNumber `json:"lightRows,omitempty" swaggertype:"string"`
	Count         FlexNumber `json:"count,omitempty" swaggertype:"string"`
	Surface       string     `json:"surface,omitempty" example:"floor" enums:"floor,wall"`
	Area          FlexNumber `json:"area,omitempty" swaggertype:"string"`
} // @name ApplicationRequest

// RoomRequest is one selected room.
// @Description A selected room and its enabled applications
type RoomRequest struct {
	Name         string               `json:"name,omitempty" example:"Kitchen 1"`
	AreaType     string               `json:"areaType" example:"Kitchen"`
	Applications []ApplicationRequest `json:"applications"`
} // @name RoomRequest

// EstimateRequest is the full selection state submitted for calculation.
// @Description Rooms to estimate
type EstimateRequest struct {
	Rooms []RoomRequest `json:"rooms"`
} // @name EstimateRequest

// Validate checks the structural fields. Numeric fields are not validated
// here; an unusable number only drops its own application.
func (r *EstimateRequest) Validate() error {
	return validateRooms(r.Rooms).orNil()
}

// ToRoomInputs converts the request into model inputs. Unnamed rooms are
// called "<area type> <n>", counting rooms of the same type.
func (r *EstimateRequest) ToRoomInputs() ([]model.RoomInput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	rooms := make([]model.RoomInput, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		seen[room.AreaType]++
		name := strings.TrimSpace(room.Name)
		if name == "" {
			name = room.AreaType + " " + strconv.Itoa(seen[room.AreaType])
		}
		rooms = append(rooms, model.RoomInput{
			Name:         name,
			AreaType:     model.AreaType(room.AreaType),
			Applications: toApplications(room.Applications),
		})
	}
	return rooms, nil
}

func validateRooms(rooms []RoomRequest) ValidationErrors {
	var errs ValidationErrors
	if len(rooms) == 0 {
		errs = append(errs, &ValidationError{Field: "rooms", Message: "at least one room is required"})
	}
	for i, room := range rooms {
		if !knownAreaType(room.AreaType) {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("rooms[%d].areaType", i),
				Message: fmt.Sprintf("unknown area type %q", room.AreaType),
			})
		}
		for j, app := range room.Applications {
			field := fmt.Sprintf("rooms[%d].applications[%d]", i, j)
			switch model.ApplicationKind(app.Type) {
			case model.KindFloor, model.KindWall, model.KindHighlight:
			case model.KindTotalArea:
				if s := model.Surface(app.Surface); s != model.SurfaceFloor && s != model.SurfaceWall {
					errs = append(errs, &ValidationError{Field: field + ".surface", Message: "must be floor or wall"})
				}
			default:
				errs = append(errs, &ValidationError{Field: field + ".type", Message: fmt.Sprintf("unknown application type %q", app.Type)})
			}
		}
	}
	return errs
}

func knownAreaType(name string) bool {
	for _, a := range model.AreaTypes {
		if string(a) == name {
			return true
		}
	}
	return false
}

// toApplications assumes the requests passed validateRooms.
func toApplications(reqs []ApplicationRequest) []model.ApplicationInput {
	indexes := make(map[model.Surface]int)
	apps := make([]model.ApplicationInput, 0, len(reqs))

	for _, req := range reqs {
		common := model.ApplicationCommon{
			TileSpecID:   strings.TrimSpace(req.TileSpecID),
			PricePerSqFt: req.Price.Positive(),
			DesignLabel:  strings.TrimSpace(req.Design),
		}

		switch model.ApplicationKind(req.Type) {
		case model.KindFloor:
			apps = append(apps, model.FloorInput{
				ApplicationCommon: common,
				LengthFt:          req.Length.Positive(),
				WidthFt:           req.Width.Positive(),
			})
		case model.KindWall:
			dark, _ := req.DarkRows.Count()
			highlight, _ := req.HighlightRows.Count()
			wall := model.WallInput{
				ApplicationCommon: common,
				LengthFt:          req.Length.Positive(),
				HeightFt:          req.Height.Positive(),
				DarkRows:          dark,
				HighlightRows:     highlight,
			}
			if light, present := req.LightRows.Count(); present {
				wall.LightRows = &light
			}
			apps = append(apps, wall)
		case model.KindHighlight:
			count, _ := req.Count.Count()
			apps = append(apps, model.HighlightInput{ApplicationCommon: common, TileCount: count})
		case model.KindTotalArea:
			surface := model.Surface(req.Surface)
			indexes[surface]++
			apps = append(apps, model.TotalAreaInput{
				ApplicationCommon: common,
				Surface:           surface,
				Index:             indexes[surface],
				AreaSqFt:          req.Area.Positive(),
			})
		}
	}
	return apps
}

// CustomerDetailsRequest is the identity block of a customer record.
// @Description Customer identity details
type CustomerDetailsRequest struct {
	FullName      string `json:"fullname" binding:"required,notblank" example:"Priya Raman"`
	Phone         string `json:"phone" binding:"required,phone" example:"9876543210"`
	Address       string `json:"address" binding:"required,notblank" example:"12 Gandhi Road, Madurai"`
	Attender      string `json:"attender" binding:"required,notblank" example:"Kumar"`
	AttenderPhone string `json:"attenderPhone" binding:"required,phone" example:"9123456780"`
} // @name CustomerDetailsRequest

// ToDetails returns the trimmed identity details.
func (r *CustomerDetailsRequest) ToDetails() model.CustomerDetails {
	return model.CustomerDetails{
		FullName:      strings.TrimSpace(r.FullName),
		Phone:         strings.TrimSpace(r.Phone),
		Address:       strings.TrimSpace(r.Address),
		Attender:      strings.TrimSpace(r.Attender),
		AttenderPhone: strings.TrimSpace(r.AttenderPhone),
	}
}

// SaveEstimateRequest carries customer details with the raw room selections.
// The server recomputes the estimate before storing it.
// @Description Customer details and rooms to estimate and save
type SaveEstimateRequest struct {
	CustomerDetailsRequest
	Rooms []RoomRequest `json:"rooms"`
} // @name SaveEstimateRequest

// Validate checks the room structure. Customer details are checked by the
// binding tags.
func (r *SaveEstimateRequest) Validate() error {
	return validateRooms(r.Rooms).orNil()
}

// Estimate returns the room part of the request.
func (r *SaveEstimateRequest) Estimate() *EstimateRequest {
	return &EstimateRequest{Rooms: r.Rooms}
}

// CreateCustomerRequest stores an already computed estimate as posted by
// older clients.
// @Description Customer record with a client-computed estimate
type CreateCustomerRequest struct {
	CustomerDetailsRequest
	TotalAmount    float64              `json:"totalAmount" binding:"gte=0" example:"10660"`
	TotalArea      float64              `json:"totalArea" binding:"gte=0" example:"232"`
	TotalWeight    float64              `json:"totalWeight" binding:"gte=0" example:"370.5"`
	LoadingCharges float64              `json:"loadingCharges" binding:"gte=0" example:"100"`
	TotalTileCost  float64              `json:"totalTileCost" binding:"gte=0" example:"10560"`
	Rooms          []model.CustomerRoom `json:"rooms"`
} // @name CreateCustomerRequest

// ToCustomer builds the record to store.
func (r *CreateCustomerRequest) ToCustomer() *model.Customer {
	d := r.ToDetails()
	rooms := r.Rooms
	if rooms == nil {
		rooms = []model.CustomerRoom{}
	}
	return &model.Customer{
		FullName:       d.FullName,
		Phone:          d.Phone,
		Address:        d.Address,
		Attender:       d.Attender,
		AttenderPhone:  d.AttenderPhone,
		TotalAmount:    r.TotalAmount,
		TotalArea:      r.TotalArea,
		TotalWeight:    r.TotalWeight,
		LoadingCharges: r.LoadingCharges,
		TotalTileCost:  r.TotalTileCost,
		Rooms:          rooms,
	}
}
