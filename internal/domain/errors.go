package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrValidation    = errors.New("invalid input")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrInvalidPlan   = errors.New("invalid plan")
)
