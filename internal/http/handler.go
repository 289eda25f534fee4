package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tileworks/tile-estimator/internal/catalog"
	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/i18n"
	"github.com/tileworks/tile-estimator/internal/logger"
	"github.com/tileworks/tile-estimator/internal/middleware"
	"github.com/tileworks/tile-estimator/internal/service"
)

// Handler provides HTTP handlers for the catalog and estimate routes.
type Handler struct {
	estimator service.Estimator
	customers service.CustomerService
	sink      service.LogSink
	log       zerolog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCustomerService enables the routes that persist estimates.
func WithCustomerService(customers service.CustomerService) HandlerOption {
	return func(h *Handler) {
		h.customers = customers
	}
}

// WithLogSink sets where audit entries are sent.
func WithLogSink(sink service.LogSink) HandlerOption {
	return func(h *Handler) {
		h.sink = sink
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(estimator service.Estimator, opts ...HandlerOption) *Handler {
	h := &Handler{
		estimator: estimator,
		log:       logger.Component("http"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListTileSpecs handles GET /api/tile-specs.
//
// @Summary      List tile sizes
// @Description  Returns every tile size the store sells, in menu order, with its box contents, weight and coverage.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.TileSpec}
// @Router       /api/tile-specs [get]
func (h *Handler) ListTileSpecs(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(catalog.All())
}

// ListAreas handles GET /api/areas.
//
// @Summary      List room categories
// @Description  Returns the room categories and the application types each one offers. Highlight tiles are offered for kitchens only.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.AreaTypeResponse}
// @Router       /api/areas [get]
func (h *Handler) ListAreas(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewAreaTypeResponses())
}

// CalculateEstimate handles POST /api/estimates/calculate.
//
// @Summary      Calculate an estimate
// @Description  Computes boxes, area, cost and weight for every enabled application in every room, then the loading charge and grand total. Applications with unusable numbers are skipped and listed under skipped. Nothing is stored.
// @Tags         Estimates
// @Accept       json
// @Produce      json
// @Param        request body dto.EstimateRequest true "Selected rooms"
// @Success      200 {object} dto.SuccessResponse{data=model.EstimateResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/estimates/calculate [post]
func (h *Handler) CalculateEstimate(c *gin.Context) {
	req, ok := BindAndValidate[dto.EstimateRequest](c)
	if !ok {
		return
	}

	result, ok := h.estimate(c, req)
	if !ok {
		return
	}

	middleware.AuditLog(h.sink, c, model.ActionCalculateEstimate, "Estimate calculated", map[string]any{
		"rooms":       len(result.RoomResults),
		"grand_total": result.GrandTotalRupees,
	})
	NewResponseBuilder(c).SuccessOK(result)
}

// SaveEstimate handles POST /api/estimates.
//
// @Summary      Calculate and save an estimate
// @Description  Recomputes the estimate from the submitted rooms and stores it with the customer details. Client supplied totals are never trusted.
// @Tags         Estimates
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SaveEstimateRequest true "Customer details and selected rooms"
// @Success      201 {object} dto.SuccessResponse{data=dto.CustomerSavedResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      503 {object} dto.ErrorResponse "Customer store unavailable"
// @Router       /api/estimates [post]
func (h *Handler) SaveEstimate(c *gin.Context) {
	req, ok := BindAndValidate[dto.SaveEstimateRequest](c)
	if !ok {
		return
	}

	result, ok := h.estimate(c, req.Estimate())
	if !ok {
		return
	}

	customer := model.NewCustomer(req.ToDetails(), result)
	if !h.saveCustomer(c, customer, model.ActionSaveEstimate) {
		return
	}
	NewResponseBuilder(c).SuccessCreated(h.savedResponse(c, customer))
}

// estimate runs the estimator and writes the error response on failure.
func (h *Handler) estimate(c *gin.Context, req *dto.EstimateRequest) (model.EstimateResult, bool) {
	builder := NewResponseBuilder(c)

	rooms, err := req.ToRoomInputs()
	if err != nil {
		builder.ValidationError(err)
		return model.EstimateResult{}, false
	}

	result, err := h.estimator.Estimate(rooms)
	if err != nil {
		if errors.Is(err, service.ErrMalformedApplication) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyMalformedRoom, err)
			return model.EstimateResult{}, false
		}
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("estimate failed")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return model.EstimateResult{}, false
	}

	for _, room := range result.RoomResults {
		for _, skipped := range room.Skipped {
			h.log.Debug().
				Str("room", room.RoomName).
				Int("position", skipped.Position).
				Str("kind", string(skipped.Kind)).
				Str("reason", skipped.Reason).
				Msg("application skipped")
		}
	}
	return result, true
}

// saveCustomer stores customer and writes the error response on failure.
func (h *Handler) saveCustomer(c *gin.Context, customer *model.Customer, action string) bool {
	if h.customers == nil {
		NewResponseBuilder(c).Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, service.ErrRepositoryNotConfigured)
		return false
	}

	if err := h.customers.Save(c.Request.Context(), customer); err != nil {
		middleware.AuditLogError(h.sink, c, action, "Failed to save customer", err, map[string]any{
			"store": h.customers.Store(),
		})
		status, key := storeErrorStatus(err, http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable)
		NewResponseBuilder(c).Error(status, key, err)
		return false
	}

	middleware.SetCustomerID(c, customer.ID.Hex())
	middleware.AuditLog(h.sink, c, action, "Customer saved", map[string]any{
		"store":        h.customers.Store(),
		"rooms":        len(customer.Rooms),
		"total_amount": customer.TotalAmount,
	})
	return true
}

func (h *Handler) savedResponse(c *gin.Context, customer *model.Customer) dto.CustomerSavedResponse {
	msg := i18n.GetTranslator().Translate(i18n.SuccessKeyCustomerSaved, i18n.GetLocale(c))
	return dto.CustomerSavedResponse{
		Message:  msg + " (" + h.customers.Store() + ")",
		Customer: customer,
	}
}
