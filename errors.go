package mt64

import "errors"

// ErrInvalidArgument is returned when a bound or range precondition is
// violated. The engine state is left untouched in that case.
var ErrInvalidArgument = errors.New("mt64: invalid argument")
