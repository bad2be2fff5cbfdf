package platform

import (
	"errors"
)

var (
	// ErrStorageUnavailable is returned when the staging store can't be reached.
	// The caller owns retry policy, the core never retries.
	ErrStorageUnavailable = errors.New("staging storage unavailable")
	// ErrConstraintViolation is returned when storage integrity constraints reject
	// a record which passed validation. It signals a programming-contract defect.
	ErrConstraintViolation = errors.New("staging constraint violation")
	// ErrRecordNotFound is returned when a record with requested ID does not exist.
	ErrRecordNotFound = errors.New("staging record not found")
)
