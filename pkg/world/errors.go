package world

import "errors"

var (
	// ErrInvalidArgument marks a programming error in the caller, such as an empty room name.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateName is returned when a room or item name is registered twice.
	ErrDuplicateName = errors.New("duplicate name")
)
