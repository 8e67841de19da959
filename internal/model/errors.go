package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("reservation conflict")
	ErrNotFound        = errors.New("not found")
	ErrStateTransition = errors.New("illegal status transition")
	ErrNoChange        = errors.New("status unchanged")
	ErrUnavailable     = errors.New("persistence unavailable")

	ErrCourtInUse = fmt.Errorf("%w: court has reservations", ErrConflict)
	// ErrStale is returned by stores when a compare-and-set status update
	// finds the row no longer in the expected state.
	ErrStale = errors.New("stale status")
)

// ValidationError means the caller should fix the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type ConflictError struct {
	CourtID    int64
	Date       time.Time
	Start, End time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("court %d is already reserved between %s and %s on %s",
		e.CourtID, e.Start.Format("15:04"), e.End.Format("15:04"), e.Date.Format(time.DateOnly))
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StateTransitionError covers both illegal transitions and same-status
// requests; the latter also match ErrNoChange.
type StateTransitionError struct {
	From, To Status
}

func (e *StateTransitionError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("reservation is already %s", e.From)
	}
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *StateTransitionError) Is(target error) bool {
	if target == ErrNoChange {
		return e.From == e.To
	}
	return target == ErrStateTransition
}

// PersistenceError means the answer is unknown; callers should retry later.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrUnavailable }
