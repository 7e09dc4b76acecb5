package xdgshell

import "fmt"

// ErrorCode identifies one of the wire protocol errors this module can
// raise. Values match the meaning (not the wire numbering, which belongs
// to the codec adapter) of the corresponding xdg-shell protocol error.
type ErrorCode int

const (
	ErrInvalidInput ErrorCode = iota + 1
	ErrInvalidPositioner
	ErrNotTheTopmostPopup
	ErrInvalidSurfaceState
	ErrNotConstructed
	ErrUnconfiguredBuffer
	ErrRole
	ErrInvalidGrab
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidInput:
		return "invalid_input"
	case ErrInvalidPositioner:
		return "invalid_positioner"
	case ErrNotTheTopmostPopup:
		return "not_the_topmost_popup"
	case ErrInvalidSurfaceState:
		return "invalid_surface_state"
	case ErrNotConstructed:
		return "not_constructed"
	case ErrUnconfiguredBuffer:
		return "unconfigured_buffer"
	case ErrRole:
		return "role"
	case ErrInvalidGrab:
		return "invalid_grab"
	default:
		return "unknown"
	}
}

// ProtocolError is a protocol-plane failure: it must be posted on the wire
// and the offending resource killed. The codec adapter is responsible for
// turning this into the actual wire event; the core only returns it.
type ProtocolError struct {
	Code    ErrorCode
	Object  string
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Object, e.Code, e.Message)
}

func protoErr(code ErrorCode, object, format string, args ...any) *ProtocolError {
	return &ProtocolError{Code: code, Object: object, Message: fmt.Sprintf(format, args...)}
}
