// internal/services/errors.go
package services

import "errors"

var (
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrUserNotFound      = errors.New("user not found")
)
