package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPriority = fmt.Errorf("%w: unknown priority", ErrInvalidInput)
	ErrInvalidDeadline = fmt.Errorf("%w: unrecognised deadline", ErrInvalidInput)
	ErrInvalidSortKey  = errors.New("unknown sort key")
	ErrInvalidSection  = errors.New("unknown section")
	ErrInvalidID       = errors.New("invalid task id")
	ErrStoreNil        = errors.New("task store is nil")
)
