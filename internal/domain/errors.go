package domain

import "errors"

var (
	ErrEmptyDates       = errors.New("dates list is empty")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidPeriod    = errors.New("period start is after its end")
	ErrNegativeOverride = errors.New("negative fee override")
	ErrInvalidView      = errors.New("unknown settlement view")
)
