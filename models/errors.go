package models

import "errors"

// ErrorKind identifies one member of the closed set of failure conditions the
// services can produce. Controllers map the kind's status onto the response.
type ErrorKind string

const (
	KindValidation       ErrorKind = "VALIDATION_ERROR"
	KindInvalidSKU       ErrorKind = "INVALID_SKU"
	KindInvalidItemID    ErrorKind = "INVALID_IDENTIFIER_FORMAT"
	KindInvalidQuantity  ErrorKind = "INVALID_QUANTITY"
	KindProductNotFound  ErrorKind = "PRODUCT_NOT_FOUND"
	KindCategoryNotFound ErrorKind = "CATEGORY_NOT_FOUND"
	KindItemNotFound     ErrorKind = "CART_ITEM_NOT_FOUND"
	KindUserNotFound     ErrorKind = "USER_NOT_FOUND"
	KindProductInactive  ErrorKind = "PRODUCT_NOT_AVAILABLE"
	KindOutOfStock       ErrorKind = "OUT_OF_STOCK"
	KindMissingVariant   ErrorKind = "MISSING_VARIANT"
	KindInvalidVariant   ErrorKind = "INVALID_VARIANT"
	KindForbidden        ErrorKind = "FORBIDDEN"
	KindConflict         ErrorKind = "CONFLICT"
	KindAuth             ErrorKind = "AUTH_ERROR"
)

type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(kind ErrorKind, status int, message string) *AppError {
	return &AppError{Kind: kind, Status: status, Message: message}
}

func ValidationError(message string) *AppError {
	return NewAppError(KindValidation, 400, message)
}

func InvalidSKUError() *AppError {
	return NewAppError(KindInvalidSKU, 400, "Invalid SKU format")
}

func InvalidItemIDError() *AppError {
	return NewAppError(KindInvalidItemID, 400, "Invalid item ID format")
}

func InvalidQuantityError() *AppError {
	return NewAppError(KindInvalidQuantity, 400, "Quantity must be greater than 0")
}

func ProductNotFoundError() *AppError {
	return NewAppError(KindProductNotFound, 404, "Product not found")
}

func CategoryNotFoundError() *AppError {
	return NewAppError(KindCategoryNotFound, 404, "Category not found")
}

func ItemNotFoundError() *AppError {
	return NewAppError(KindItemNotFound, 404, "Cart item not found")
}

func UserNotFoundError() *AppError {
	return NewAppError(KindUserNotFound, 404, "User not found")
}

func ProductInactiveError() *AppError {
	return NewAppError(KindProductInactive, 400, "Product is not available")
}

func OutOfStockError(message string) *AppError {
	return NewAppError(KindOutOfStock, 400, message)
}

func MissingVariantError(message string) *AppError {
	return NewAppError(KindMissingVariant, 400, message)
}

func InvalidVariantError(message string) *AppError {
	return NewAppError(KindInvalidVariant, 400, message)
}

func ForbiddenError() *AppError {
	return NewAppError(KindForbidden, 403, "Unauthorized")
}

func ConflictError(message string) *AppError {
	return NewAppError(KindConflict, 409, message)
}

func AuthError(message string) *AppError {
	return NewAppError(KindAuth, 401, message)
}

// AsAppError unwraps err into its tagged variant, when it has one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
