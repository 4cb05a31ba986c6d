package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMotion          = errors.New("empty motion")
	ErrMotionConflict       = errors.New("motion conflicts with an existing binding")
	ErrUnknownMotion        = errors.New("unknown motion")
	ErrPendingMotion        = errors.New("pending motion")
	ErrEmptyKeySpec         = errors.New("empty key specification")
	ErrInvalidKeySpec       = errors.New("invalid key specification")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrNothingToPut         = errors.New("nothing to put")
	ErrStartOfBuffer        = errors.New("start of buffer")
	ErrEndOfBuffer          = errors.New("end of buffer")
	ErrStartOfLine          = errors.New("start of line")
	ErrEndOfLine            = errors.New("end of line")
)

type ErrorId int

const (
	ErrUnknownMotionId ErrorId = iota
	ErrPendingMotionId
	ErrFailedToYankId
	ErrFailedToPasteId
	ErrNothingToPutId
)

// Error pairs a user visible error with its id so consumers can style or
// filter it without matching on text.
type Error struct {
	id  ErrorId
	err error
}

// NewError tags err with id.
func NewError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) ID() ErrorId { return e.id }

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// UnknownMotionError reports an atom sequence that has no registered
// continuation in the active motion tree.
type UnknownMotionError struct {
	Sequence []KeyEvent
}

func (e *UnknownMotionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownMotion, SequenceString(e.Sequence))
}

func (e *UnknownMotionError) Unwrap() error { return ErrUnknownMotion }

// MotionConflictError reports a registration that would shadow, or be
// shadowed by, an already registered path.
type MotionConflictError struct {
	Sequence []KeyEvent
}

func (e *MotionConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMotionConflict, SequenceString(e.Sequence))
}

func (e *MotionConflictError) Unwrap() error { return ErrMotionConflict }
