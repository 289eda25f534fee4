package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// CatalogRoutes serves the read-only tile and room catalog.
type CatalogRoutes struct {
	handler *Handler
}

// RegisterRoutes registers the catalog routes.
func (r CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tile-specs", r.handler.ListTileSpecs)
	rg.GET("/areas", r.handler.ListAreas)
}

// EstimateRoutes serves estimate calculation and saving.
type EstimateRoutes struct {
	handler *Handler
}

// RegisterRoutes registers the estimate routes.
func (r EstimateRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/estimates/calculate", r.handler.CalculateEstimate)
	rg.POST("/estimates", r.handler.SaveEstimate)
}

// CustomerRoutes serves saved customer records and their documents.
type CustomerRoutes struct {
	handler *Handler
}

// RegisterRoutes registers the customer routes.
func (r CustomerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", r.handler.CreateCustomer)
	customers.GET("", r.handler.ListCustomers)
	customers.GET("/export.xlsx", r.handler.ExportCustomers)
	customers.GET("/:id", r.handler.GetCustomer)
	customers.GET("/:id/estimate.pdf", r.handler.CustomerEstimatePDF)
}

// LogRoutes serves the stored logs.
type LogRoutes struct {
	handler *LogsHandler
}

// RegisterRoutes registers the log routes.
func (r LogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/logs", r.handler.ListLogs)
}
