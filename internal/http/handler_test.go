package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tileworks/tile-estimator/internal/circuitbreaker"
	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/mocks"
	"github.com/tileworks/tile-estimator/internal/service"
)

const kitchenFloorBody = `{"rooms":[{"areaType":"Kitchen","applications":[
	{"type":"floor","tileSpecId":"4","price":"50","design":"F-204","length":"10","width":12}
]}]}`

const customerFields = `"fullname":"Priya Raman","phone":"9876543210","address":"12 Gandhi Road, Madurai","attender":"Kumar","attenderPhone":"9123456780"`

func setupRouter(opts ...HandlerOption) *gin.Engine {
	handler := NewHandler(service.NewEstimatorService(), opts...)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return NewRouter(handler, NewHealthHandler(), cfg)
}

// storesWithID mimics the repository assigning the object id on save.
func storesWithID(args mock.Arguments) {
	args.Get(1).(*model.Customer).ID = primitive.NewObjectID()
}

func TestListTileSpecs(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/tile-specs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var specs []model.TileSpec
	resp := decodeData(t, w, &specs)
	assert.NotEmpty(t, resp.RequestID)
	require.Len(t, specs, 10)
	assert.Equal(t, "1x1_9", specs[0].ID)
	assert.Equal(t, "2.75x5.25", specs[9].ID)
	assert.Equal(t, 16.0, specs[4].CoveragePerBoxSqFt)
}

func TestListAreas(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/areas", "")
	require.Equal(t, http.StatusOK, w.Code)

	var areas []dto.AreaTypeResponse
	decodeData(t, w, &areas)
	require.Len(t, areas, 8)
	assert.Equal(t, model.AreaKitchen, areas[0].Name)
	assert.Contains(t, areas[0].ApplicationTypes, model.KindHighlight)
	assert.Equal(t, model.AreaTotalFloor, areas[7].Name)
	assert.NotContains(t, areas[7].ApplicationTypes, model.KindHighlight)
}

func TestCalculateEstimate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		check          func(*testing.T, *gin.Engine, string)
	}{
		{
			name:           "kitchen floor with string numbers",
			body:           kitchenFloorBody,
			expectedStatus: http.StatusOK,
		},
		{
			name: "kitchen floor and wall",
			body: `{"rooms":[{"name":"Main kitchen","areaType":"Kitchen","applications":[
				{"type":"floor","tileSpecId":"4","price":50,"length":10,"width":12},
				{"type":"wall","tileSpecId":"1","price":"40","length":"10","height":"9","darkRows":"3","highlightRows":1}
			]}]}`,
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid price is skipped",
			body: `{"rooms":[{"areaType":"Bedroom","applications":[
				{"type":"floor","tileSpecId":"4","price":"abc","length":10,"width":12}
			]}]}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed json",
			body:           `{"rooms": [`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no rooms",
			body:           `{"rooms":[]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown area and application type",
			body:           `{"rooms":[{"areaType":"Garage","applications":[{"type":"ceiling"}]}]}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter()
			w := doRequest(router, http.MethodPost, "/api/estimates/calculate", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCalculateEstimate_Totals(t *testing.T) {
	sink := &recordingSink{}
	router := setupRouter(WithLogSink(sink))

	t.Run("single floor", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/estimates/calculate", kitchenFloorBody)
		require.Equal(t, http.StatusOK, w.Code)

		var est model.EstimateResult
		decodeData(t, w, &est)
		require.Len(t, est.RoomResults, 1)
		assert.Equal(t, "Kitchen 1", est.RoomResults[0].RoomName)
		require.Len(t, est.RoomResults[0].ApplicationResults, 1)
		assert.Equal(t, 8, est.RoomResults[0].ApplicationResults[0].TotalBoxes)
		assert.Equal(t, 128.0, est.TotalAreaSqFt)
		assert.Equal(t, 6400.0, est.TileCostRupees)
		assert.Equal(t, 208.0, est.TotalWeightKg)
		assert.Equal(t, 60.0, est.LoadingChargeRupees)
		assert.Equal(t, 6460.0, est.GrandTotalRupees)
	})

	t.Run("floor and wall", func(t *testing.T) {
		body := `{"rooms":[{"areaType":"Kitchen","applications":[
			{"type":"floor","tileSpecId":"4","price":50,"length":10,"width":12},
			{"type":"wall","tileSpecId":"1","price":40,"length":10,"height":9,"darkRows":3,"highlightRows":1}
		]}]}`
		w := doRequest(router, http.MethodPost, "/api/estimates/calculate", body)
		require.Equal(t, http.StatusOK, w.Code)

		var est model.EstimateResult
		decodeData(t, w, &est)
		require.Len(t, est.RoomResults[0].ApplicationResults, 2)
		wall := est.RoomResults[0].ApplicationResults[1]
		assert.Equal(t, 4, wall.DarkBoxes)
		assert.Equal(t, 2, wall.HighlightBoxes)
		assert.Equal(t, 7, wall.LightBoxes)
		assert.Equal(t, 370.5, est.TotalWeightKg)
		assert.Equal(t, 100.0, est.LoadingChargeRupees)
		assert.Equal(t, 10660.0, est.GrandTotalRupees)
	})

	t.Run("skipped application", func(t *testing.T) {
		body := `{"rooms":[{"areaType":"Bedroom","applications":[
			{"type":"floor","tileSpecId":"4","price":"abc","length":10,"width":12},
			{"type":"highlight","tileSpecId":"1","price":30,"count":4}
		]}]}`
		w := doRequest(router, http.MethodPost, "/api/estimates/calculate", body)
		require.Equal(t, http.StatusOK, w.Code)

		var est model.EstimateResult
		decodeData(t, w, &est)
		require.Len(t, est.RoomResults, 1)
		assert.Empty(t, est.RoomResults[0].ApplicationResults)
		assert.Len(t, est.RoomResults[0].Skipped, 2)
		assert.Zero(t, est.GrandTotalRupees)
	})

	t.Run("oversized length is skipped", func(t *testing.T) {
		body := `{"rooms":[{"areaType":"Kitchen","applications":[
			{"type":"floor","tileSpecId":"4","price":"50","length":"1e20","width":"10"},
			{"type":"floor","tileSpecId":"4","price":"50","length":"10","width":"12"}
		]}]}`
		w := doRequest(router, http.MethodPost, "/api/estimates/calculate", body)
		require.Equal(t, http.StatusOK, w.Code)

		var est model.EstimateResult
		decodeData(t, w, &est)
		require.Len(t, est.RoomResults, 1)
		assert.Len(t, est.RoomResults[0].Skipped, 1)
		require.Len(t, est.RoomResults[0].ApplicationResults, 1)
		assert.Equal(t, 8, est.RoomResults[0].ApplicationResults[0].TotalBoxes)
		assert.Equal(t, 6460.0, est.GrandTotalRupees)
	})

	assert.Contains(t, sink.actions(), model.ActionCalculateEstimate)
}

func TestCalculateEstimate_ValidationDetails(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/api/estimates/calculate",
		`{"rooms":[{"areaType":"Garage","applications":[{"type":"total_area","surface":"roof"}]}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Contains(t, resp.Details, "rooms[0].areaType")
	assert.Contains(t, resp.Details, "rooms[0].applications[0].surface")
	assert.NotEmpty(t, resp.RequestID)
}

func TestCalculateEstimate_EstimatorErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"malformed application", fmt.Errorf("%w: nil application", service.ErrMalformedApplication), http.StatusBadRequest},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator := &mocks.MockEstimator{}
			estimator.On("Estimate", mock.Anything).Return(model.EstimateResult{}, tt.err)

			router := NewRouter(NewHandler(estimator), nil, RouterConfig{})
			w := doRequest(router, http.MethodPost, "/api/estimates/calculate", kitchenFloorBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			estimator.AssertExpectations(t)
		})
	}
}

func TestSaveEstimate(t *testing.T) {
	t.Run("recomputes and stores", func(t *testing.T) {
		customers := &mocks.MockCustomerService{}
		customers.On("Save", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.FullName == "Priya Raman" && c.TotalAmount == 6460 && len(c.Rooms) == 1
		})).Run(storesWithID).Return(nil).Once()
		customers.On("Store").Return("mongodb")

		sink := &recordingSink{}
		router := setupRouter(WithCustomerService(customers), WithLogSink(sink))

		body := `{` + customerFields + `,"totalAmount":1,"rooms":[{"areaType":"Kitchen","applications":[
			{"type":"floor","tileSpecId":"4","price":"50","length":"10","width":"12"}]}]}`
		w := doRequest(router, http.MethodPost, "/api/estimates", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var saved dto.CustomerSavedResponse
		decodeData(t, w, &saved)
		assert.Equal(t, "Customer saved successfully (mongodb)", saved.Message)
		require.NotNil(t, saved.Customer)
		assert.False(t, saved.Customer.ID.IsZero())
		assert.Equal(t, 60.0, saved.Customer.LoadingCharges)
		assert.Equal(t, 8, saved.Customer.Rooms[0].Items[0].Boxes)
		assert.Contains(t, sink.actions(), model.ActionSaveEstimate)
		customers.AssertExpectations(t)
	})

	t.Run("invalid phone", func(t *testing.T) {
		customers := &mocks.MockCustomerService{}
		router := setupRouter(WithCustomerService(customers))

		body := `{"fullname":"A","phone":"12345","address":"B","attender":"C","attenderPhone":"9123456780","rooms":[{"areaType":"Kitchen","applications":[]}]}`
		w := doRequest(router, http.MethodPost, "/api/estimates", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, "must be a 10 digit number", resp.Details["phone"])
		customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("store unavailable", func(t *testing.T) {
		customers := &mocks.MockCustomerService{}
		customers.On("Save", mock.Anything, mock.Anything).Return(circuitbreaker.ErrCircuitOpen)
		customers.On("Store").Return("mongodb")

		sink := &recordingSink{}
		router := setupRouter(WithCustomerService(customers), WithLogSink(sink))

		w := doRequest(router, http.MethodPost, "/api/estimates", `{`+customerFields+`,"rooms":[{"areaType":"Kitchen","applications":[]}]}`)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
		assert.Contains(t, sink.actions(), model.ActionSaveEstimate)
	})

	t.Run("no store configured", func(t *testing.T) {
		router := setupRouter()

		w := doRequest(router, http.MethodPost, "/api/estimates", `{`+customerFields+`,"rooms":[{"areaType":"Kitchen","applications":[]}]}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCreateCustomer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		saveErr        error
		expectSave     bool
		expectedStatus int
	}{
		{
			name: "original contract",
			body: `{` + customerFields + `,"totalAmount":10660,"totalArea":232,"totalWeight":370.5,"loadingCharges":100,"totalTileCost":10560,
				"rooms":[{"name":"Kitchen 1","areaType":"Kitchen","totalArea":232,"totalCost":10560,"totalWeight":370.5,
				"items":[{"type":"Floor Tile","design":"F-204","area":128,"boxes":8,"price":50,"cost":6400,"weight":208}]}]}`,
			expectSave:     true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "totals default to zero",
			body:           `{` + customerFields + `}`,
			expectSave:     true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing fields",
			body:           `{"fullname":"Priya Raman"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative total",
			body:           `{` + customerFields + `,"totalAmount":-5}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "store failure",
			body:           `{` + customerFields + `}`,
			saveErr:        errors.New("write failed"),
			expectSave:     true,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "timeout",
			body:           `{` + customerFields + `}`,
			saveErr:        fmt.Errorf("save customer: %w", context.DeadlineExceeded),
			expectSave:     true,
			expectedStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers := &mocks.MockCustomerService{}
			customers.On("Store").Return("sqlite").Maybe()
			if tt.expectSave {
				customers.On("Save", mock.Anything, mock.Anything).Run(storesWithID).Return(tt.saveErr).Once()
			}
			router := setupRouter(WithCustomerService(customers))

			w := doRequest(router, http.MethodPost, "/api/customers", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var saved dto.CustomerSavedResponse
				decodeData(t, w, &saved)
				assert.Equal(t, "Customer saved successfully (sqlite)", saved.Message)
				assert.NotNil(t, saved.Customer.Rooms)
			}
			customers.AssertExpectations(t)
		})
	}
}

func TestListCustomers(t *testing.T) {
	stored := []model.Customer{{ID: primitive.NewObjectID(), FullName: "B"}, {ID: primitive.NewObjectID(), FullName: "A"}}

	tests := []struct {
		name           string
		query          string
		setup          func(*mocks.MockCustomerService)
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "default limit",
			setup: func(m *mocks.MockCustomerService) {
				m.On("List", mock.Anything, 0).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:  "explicit limit",
			query: "?limit=1",
			setup: func(m *mocks.MockCustomerService) {
				m.On("List", mock.Anything, 1).Return(stored[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name: "empty store",
			setup: func(m *mocks.MockCustomerService) {
				m.On("List", mock.Anything, 0).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad limit",
			query:          "?limit=abc",
			setup:          func(*mocks.MockCustomerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "limit too large",
			query:          "?limit=1000",
			setup:          func(*mocks.MockCustomerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store error",
			setup: func(m *mocks.MockCustomerService) {
				m.On("List", mock.Anything, 0).Return(nil, errors.New("cursor failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers := &mocks.MockCustomerService{}
			tt.setup(customers)
			router := setupRouter(WithCustomerService(customers))

			w := doRequest(router, http.MethodGet, "/api/customers"+tt.query, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var list []model.Customer
				decodeData(t, w, &list)
				assert.NotNil(t, list)
				assert.Len(t, list, tt.expectedLen)
			}
			customers.AssertExpectations(t)
		})
	}
}
