package events

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrScheduleConflict = errors.New("schedule conflict")
	ErrInvalidDraft     = errors.New("invalid event draft")
)
