// Package storefront is the fan-store backend: catalog reads, orders and
// order items with tag-based price adjustments.
//
// Layout:
//
//	cmd/server/            HTTP entry point
//	internal/config/       environment configuration
//	internal/database/     connection, migrations, seed data, test database
//	internal/models/       gorm models
//	internal/repository/   data access interfaces and gorm implementations
//	internal/services/     pricing and order item lifecycle
//	internal/handlers/     gin handlers
//	internal/middleware/   request id, logging, metrics, CORS, i18n, rate limit
//	internal/router/       route wiring
//	internal/i18n/         embedded translations
//	internal/utils/        response envelope, validation, logger setup
package storefront
