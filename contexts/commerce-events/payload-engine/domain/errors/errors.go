package errors

import "errors"

var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateEntity = errors.New("entity already seeded")
)
