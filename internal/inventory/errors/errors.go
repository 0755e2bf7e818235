package errors

import "errors"

var (
	ErrNotFound = errors.New("train not found")

	ErrInsufficientSeats = errors.New("not enough available seats")

	// ErrCorruption means a release would have pushed available above total.
	// It indicates a bookkeeping bug elsewhere, never normal operation.
	ErrCorruption = errors.New("seat release exceeds train capacity")
)
