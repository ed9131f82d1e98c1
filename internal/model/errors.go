package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrUserAlreadyExistMessage       = "user already exists"

	ErrPickupNotFoundMessage     = "pickup request not found"
	ErrPickupNotOwnerMessage     = "not authorized to cancel this request"
	ErrPickupNotAssigneeMessage  = "not authorized to act on this request"
	ErrOrderNotFoundMessage      = "order not found"
	ErrOrderNotRequestedMessage  = "you have not requested this order"
	ErrOrderPriceMismatchMessage = "total price mismatch"
	ErrOrderOutOfStockMessage    = "not enough stock available"
	ErrOrderCartConflictMessage  = "order already has an active request from this buyer"
)

var (
	ErrInvalidLoginOrPassword = errors.New(ErrInvalidLoginOrPasswordMessage)

	ErrPickupNotFound    = errors.New(ErrPickupNotFoundMessage)
	ErrPickupNotOwner    = errors.New(ErrPickupNotOwnerMessage)
	ErrOrderPriceBad     = errors.New(ErrOrderPriceMismatchMessage)
	ErrPickupWrongStatus = errors.New("pickup request is not in a valid status for this transition")
	ErrPickupNotAssignee = errors.New(ErrPickupNotAssigneeMessage)
	ErrOrderNotFound     = errors.New(ErrOrderNotFoundMessage)
	ErrOrderNotRequested = errors.New(ErrOrderNotRequestedMessage)
	ErrOrderOutOfStock   = errors.New(ErrOrderOutOfStockMessage)
	ErrOrderCartConflict = errors.New(ErrOrderCartConflictMessage)
	ErrPickerNotFound    = errors.New("picker not found")
	ErrUserNotFound      = errors.New("user not found")
)
