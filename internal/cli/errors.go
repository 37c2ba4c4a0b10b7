package cli

import "errors"

// Errors returned for invalid user input. They are wrapped with
// the offending value, use errors.Is to test them.
var (
	ErrInvalidAttribute = errors.New("invalid card attribute")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidSize      = errors.New("invalid card size")
	ErrInvalidTheme     = errors.New("invalid theme")
)
