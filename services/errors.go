package services

import "errors"

var (
	ErrInvalidTableCode    = errors.New("invalid table code")
	ErrTableNotFound       = errors.New("table not found")
	ErrNoActiveSession     = errors.New("no active table session")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrOrderNotFound       = errors.New("order not found")
	ErrMissingCredentials  = errors.New("username and password are required")
	ErrInvalidMenuItem     = errors.New("invalid menu item")
	ErrTokenExpired        = errors.New("stored token has expired")
)
