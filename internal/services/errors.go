package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("inactive account")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrHasDependents      = errors.New("row has dependent records")
	ErrWriteFailed        = errors.New("write rejected by storage backend")
)
