package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrSelfFavorite       = errors.New("cannot favorite yourself")
	ErrInvalidRecurrence  = errors.New("reminder needs either weekdays or a date, not both")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrGenerationDisabled = errors.New("generation API not configured")
)
