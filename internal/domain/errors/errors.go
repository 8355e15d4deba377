package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInsufficientStock  = errors.New("not enough stock")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrCreateFailed       = errors.New("create failed")
	ErrUpdateFailed       = errors.New("update failed")
	ErrDeleteFailed       = errors.New("delete failed")
)
