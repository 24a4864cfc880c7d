package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidArgument indicates that a core operation received an argument outside its domain,
// such as a negative amount of cents.
var ErrInvalidArgument = errors.New("invalid argument")
