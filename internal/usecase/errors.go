package usecase

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSinkUnavailable = errors.New("submission sink unavailable")
	ErrSinkFailure     = errors.New("submission sink failure")
	ErrInternal        = errors.New("internal error")
)
