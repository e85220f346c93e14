package usecase

import "errors"

// Sentinel errors for the use case layer. The HTTP controller maps these to
// response codes.
var (
	ErrTitleRequired = errors.New("hazard title is required")
	ErrInvalidMatrix = errors.New("risk matrix configuration is invalid")
)
