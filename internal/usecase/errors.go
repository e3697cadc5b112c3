package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrHistoryUnavailable = errors.New("history storage not configured")
)
