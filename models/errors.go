package models

import "fmt"

// NotFoundError is returned by id-based lookups when the row is absent.
// The message carries the requested id and maps to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func ErrUserNotFound(id uint) error {
	return &NotFoundError{Message: fmt.Sprintf("The user with the id: %d doesn't exists", id)}
}

func ErrProductNotFound(id uint) error {
	return &NotFoundError{Message: fmt.Sprintf("Product: %d not found!", id)}
}

func ErrCategoryNotFound(id uint) error {
	return &NotFoundError{Message: fmt.Sprintf("Category: %d not found.", id)}
}

func ErrOrderNotFound(id uint) error {
	return &NotFoundError{Message: fmt.Sprintf("Order: %d not found.", id)}
}

func ErrTechnicalDetailNotFound(id uint) error {
	return &NotFoundError{Message: fmt.Sprintf("TechnicalDetail: %d not found.", id)}
}

// CartLimitError signals a violation of the per-line quantity cap.
type CartLimitError struct {
	Message string
}

func (e *CartLimitError) Error() string {
	return e.Message
}
