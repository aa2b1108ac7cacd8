package calendar

import "errors"

// ErrUnknownRegion indicates a holiday region name that has no calendar.
var ErrUnknownRegion = errors.New("unknown holiday region")
