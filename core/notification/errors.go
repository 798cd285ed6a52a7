package notification

import "errors"

var (
	ErrInvalidTemplate = errors.New("invalid notification template")
	ErrNotFound        = errors.New("notification template not found")
)
