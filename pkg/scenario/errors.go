package scenario

import (
	"errors"
	"fmt"
)

// Load failure kinds. Match them with errors.Is.
var (
	ErrIO             = errors.New("world file unreadable")
	ErrSyntax         = errors.New("malformed world data")
	ErrMissingField   = errors.New("missing required field")
	ErrDuplicateName  = errors.New("duplicate name")
	ErrDanglingExit   = errors.New("exit targets unknown room")
	ErrUnresolvedItem = errors.New("unresolved item reference")
	ErrInvalidStart   = errors.New("invalid start room")
)

// LoadError identifies which load stage failed and which entry caused it.
type LoadError struct {
	Kind   error  // One of the Err* kinds above
	Stage  string // decode, validate, items, rooms, exits, room items, start
	Detail string // Which room, item or direction is at fault
	Err    error  // Underlying cause, may be nil
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load world [%s]: %v", e.Stage, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newLoadError(kind error, stage, detail string, cause error) *LoadError {
	return &LoadError{Kind: kind, Stage: stage, Detail: detail, Err: cause}
}
