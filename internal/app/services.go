// Package app provides service initialization.
package app

import (
	"github.com/tileworks/tile-estimator/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Estimator service.Estimator
	// Customers is always set; without a repository every call fails with
	// service.ErrRepositoryNotConfigured.
	Customers service.CustomerService
	// LogWriter is nil when no logs store is available.
	LogWriter *service.LogWriter
}

// InitializeServices initializes business logic services.
func InitializeServices(db *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{
		Estimator: service.NewEstimatorService(),
	}

	if db == nil {
		components.Customers = service.NewCustomerService(nil, "")
		return components
	}

	components.Customers = service.NewCustomerService(db.CustomerRepo, db.Store)
	components.LogWriter = service.NewLogWriter(db.LoggingService, service.DefaultLogWriterConfig())
	return components
}
