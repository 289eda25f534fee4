// Package i18n provides internationalization support for the tile estimator.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyValidationFailed   = "error.validation_failed"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyCustomerNotFound   = "error.customer_not_found"
	ErrKeyInvalidCustomerID  = "error.invalid_customer_id"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyStoreUnavailable is used when the estimate was computed but could not be saved.
	ErrKeyStoreUnavailable = "error.store_unavailable"
	ErrKeyMalformedRoom    = "error.malformed_room"
	ErrKeyReportFailed     = "error.report_failed"
)

// Success message translation keys.
const (
	SuccessKeyCustomerSaved = "success.customer_saved"
)
