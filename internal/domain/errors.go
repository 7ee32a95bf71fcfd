package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate entry")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrUnavailable  = errors.New("store unavailable")
)
