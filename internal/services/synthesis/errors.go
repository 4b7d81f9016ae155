package synthesis

import "errors"

// Service errors
var (
	ErrEmptyCatalog      = errors.New("catalog is empty")
	ErrEmptyRoster       = errors.New("customer roster is empty")
	ErrInvalidPlan       = errors.New("month plan end precedes start")
	ErrTargetUnreachable = errors.New("daily revenue target unreachable")
)
