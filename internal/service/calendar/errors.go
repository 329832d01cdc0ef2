package calendar

import "errors"

var ErrInvalidMonth = errors.New("invalid year/month")
