// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError     = "common.internal_error"
	KeyValidationInvalid = "validation.invalid"
	KeyInvalidID         = "validation.invalid_id"
	KeyRateLimited       = "common.rate_limited"

	// Order items
	KeyOrderItemNotFound = "order_item.not_found"
	KeyOrderItemDeleted  = "order_item.deleted"

	// Orders
	KeyOrderNotFound = "order.not_found"
	KeyOrderDeleted  = "order.deleted"

	// Catalog
	KeyProductNotFound = "product.not_found"
	KeyUserNotFound    = "user.not_found"
)
