package booking

import "errors"

var (
	ErrDeadlinePassed = errors.New("booking deadline passed")
	ErrSlotOccupied   = errors.New("slot already occupied")
	ErrInvalidRequest = errors.New("invalid booking request")
)
