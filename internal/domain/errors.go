package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrAIProvider       = errors.New("ai provider error")
)
