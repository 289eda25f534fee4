package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tileworks/tile-estimator/internal/circuitbreaker"
	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/i18n"
	"github.com/tileworks/tile-estimator/internal/middleware"
	"github.com/tileworks/tile-estimator/internal/report"
	"github.com/tileworks/tile-estimator/internal/repository"
	"github.com/tileworks/tile-estimator/internal/service"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// storeErrorStatus maps a customer store error to a status and message key.
// Errors it does not recognise get the fallback.
func storeErrorStatus(err error, fallbackStatus int, fallbackKey string) (int, string) {
	switch {
	case errors.Is(err, repository.ErrCustomerNotFound):
		return http.StatusNotFound, i18n.ErrKeyCustomerNotFound
	case errors.Is(err, repository.ErrInvalidCustomerID):
		return http.StatusBadRequest, i18n.ErrKeyInvalidCustomerID
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return fallbackStatus, fallbackKey
	}
}

// CreateCustomer handles POST /api/customers.
//
// @Summary      Save a customer record
// @Description  Stores customer details with an estimate computed by the client. All five identity fields are required; phone numbers must have 10 digits. Missing totals default to 0.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateCustomerRequest true "Customer record"
// @Success      201 {object} dto.SuccessResponse{data=dto.CustomerSavedResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      503 {object} dto.ErrorResponse "Customer store unavailable"
// @Router       /api/customers [post]
func (h *Handler) CreateCustomer(c *gin.Context) {
	req, ok := BindAndValidate[dto.CreateCustomerRequest](c)
	if !ok {
		return
	}

	customer := req.ToCustomer()
	if !h.saveCustomer(c, customer, model.ActionSaveCustomer) {
		return
	}
	NewResponseBuilder(c).SuccessCreated(h.savedResponse(c, customer))
}

// ListCustomers handles GET /api/customers.
//
// @Summary      List saved customers
// @Description  Returns saved customers, newest first.
// @Tags         Customers
// @Produce      json
// @Param        limit query int false "Maximum number of customers (1-100)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Customer}
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Customer store unavailable"
// @Router       /api/customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.customers == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, service.ErrRepositoryNotConfigured)
		return
	}

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	customers, err := h.customers.List(c.Request.Context(), limit)
	if err != nil {
		status, key := storeErrorStatus(err, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		builder.Error(status, key, err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	builder.SuccessOK(customers)
}

// GetCustomer handles GET /api/customers/:id.
//
// @Summary      Get a saved customer
// @Tags         Customers
// @Produce      json
// @Param        id path string true "Customer id"
// @Success      200 {object} dto.SuccessResponse{data=model.Customer}
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Customer not found"
// @Router       /api/customers/{id} [get]
func (h *Handler) GetCustomer(c *gin.Context) {
	customer, ok := h.loadCustomer(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(customer)
}

// CustomerEstimatePDF handles GET /api/customers/:id/estimate.pdf.
//
// @Summary      Printable estimate
// @Description  Renders the saved estimate of one customer as an A4 PDF quotation.
// @Tags         Customers
// @Produce      application/pdf
// @Param        id path string true "Customer id"
// @Success      200 {file} file
// @Failure      404 {object} dto.ErrorResponse "Customer not found"
// @Failure      500 {object} dto.ErrorResponse "Rendering failed"
// @Router       /api/customers/{id}/estimate.pdf [get]
func (h *Handler) CustomerEstimatePDF(c *gin.Context) {
	customer, ok := h.loadCustomer(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.EstimatePDF(&buf, customer); err != nil {
		h.log.Error().Err(err).Str("customer_id", customer.ID.Hex()).Msg("failed to render estimate pdf")
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyReportFailed, err)
		return
	}

	middleware.AuditLog(h.sink, c, model.ActionPrintEstimate, "Estimate printed", nil)
	filename := fmt.Sprintf("estimate-%s.pdf", customer.ID.Hex())
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentTypePDF, buf.Bytes())
}

// ExportCustomers handles GET /api/customers/export.xlsx.
//
// @Summary      Export customers
// @Description  Downloads saved customers and their line items as an Excel workbook.
// @Tags         Customers
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        limit query int false "Maximum number of customers (1-100)"
// @Success      200 {file} file
// @Failure      503 {object} dto.ErrorResponse "Customer store unavailable"
// @Router       /api/customers/export.xlsx [get]
func (h *Handler) ExportCustomers(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.customers == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, service.ErrRepositoryNotConfigured)
		return
	}

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	customers, err := h.customers.List(c.Request.Context(), limit)
	if err != nil {
		status, key := storeErrorStatus(err, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		builder.Error(status, key, err)
		return
	}

	var buf bytes.Buffer
	if err := report.CustomersWorkbook(&buf, customers); err != nil {
		h.log.Error().Err(err).Int("customers", len(customers)).Msg("failed to build customer workbook")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyReportFailed, err)
		return
	}

	middleware.AuditLog(h.sink, c, model.ActionExportCustomers, "Customers exported", map[string]any{
		"customers": len(customers),
	})
	filename := "customers-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func (h *Handler) loadCustomer(c *gin.Context) (*model.Customer, bool) {
	builder := NewResponseBuilder(c)
	if h.customers == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, service.ErrRepositoryNotConfigured)
		return nil, false
	}

	id := c.Param("id")
	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		status, key := storeErrorStatus(err, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		builder.Error(status, key, err)
		return nil, false
	}
	middleware.SetCustomerID(c, id)
	return customer, true
}

// parseLimit reads the optional limit query value. Empty means the store
// default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > repository.DefaultCustomerListLimit {
		return 0, fmt.Errorf("limit: must be between 1 and %d", repository.DefaultCustomerListLimit)
	}
	return limit, nil
}
