package utils

import "errors"

var (
	ErrCafeNotFound     = errors.New("cafe not found")
	ErrLocationNotFound = errors.New("no cafe at location")
	ErrEmptyCollection  = errors.New("no cafes stored")
	ErrForbidden        = errors.New("invalid api key")
	ErrInvalidCafe      = errors.New("invalid cafe payload")
	ErrDuplicateCafe    = errors.New("cafe name already exists")
	ErrDatabaseError    = errors.New("database error")
)
