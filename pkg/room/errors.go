package room

import "fmt"

// ErrorKind categorizes a floor-plan engine failure. These are kinds, not
// names: callers switch on Kind, not on error string content.
type ErrorKind int

const (
	// InvalidInput means the request was malformed: non-positive
	// dimension, duplicate room id, intersecting adjacency sets, or a
	// non-finite number. Detected before any search begins.
	InvalidInput ErrorKind = iota

	// NoSolution means the search exhausted the candidate space without
	// finding a complete placement. This is a legitimate outcome, not a
	// bug.
	NoSolution

	// Timeout means a caller-supplied deadline or context cancellation
	// interrupted the search before it could finish.
	Timeout

	// InternalInvariant means a bug-class error: an invariant that should
	// never break (e.g. a placed room overlapping another) broke mid
	// search. Should not occur with correct code.
	InternalInvariant
)

// String returns the human-readable name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case NoSolution:
		return "NoSolution"
	case Timeout:
		return "Timeout"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// SolveError is the structured error type returned by the solver and the
// orchestrator (the solver wraps candidate-generator errors in one). Use
// errors.As to recover one from a wrapped error chain.
type SolveError struct {
	Kind    ErrorKind
	Message string

	// RoomID, when non-empty, identifies the room involved in the failure
	// (e.g. the room whose candidate set was being explored, or the room
	// an InternalInvariant check found broken).
	RoomID string
}

// Error implements the error interface.
func (e *SolveError) Error() string {
	if e.RoomID != "" {
		return fmt.Sprintf("%s: %s (room %s)", e.Kind, e.Message, e.RoomID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError constructs a SolveError of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *SolveError {
	return &SolveError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewRoomError constructs a SolveError scoped to a specific room.
func NewRoomError(kind ErrorKind, roomID, format string, args ...any) *SolveError {
	return &SolveError{Kind: kind, Message: fmt.Sprintf(format, args...), RoomID: roomID}
}
