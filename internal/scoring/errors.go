package scoring

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidWindow     = errors.New("invalid window")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUpstreamFetch     = errors.New("upstream fetch failure")
)
