package internal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNodeKind      = errors.New("blaze: invalid node kind")
	ErrHookOutsideComponent = errors.New("blaze: hook called outside of a component render")
	ErrHookOrder            = errors.New("blaze: hook call order changed between renders")
	ErrUpdateLoop           = errors.New("blaze: too many consecutive update passes")
)

// NodeKindError reports a value that is not a description node.
type NodeKindError struct {
	Value any
}

func (e *NodeKindError) Error() string {
	return fmt.Sprintf("%s: %T(%#v)", ErrInvalidNodeKind, e.Value, e.Value)
}

func (e *NodeKindError) Unwrap() error { return ErrInvalidNodeKind }

// HookError is what hooks panic with on misuse.
// The component runtime recovers it into the error returned by the render pass.
type HookError struct {
	err error
}

func (e *HookError) Error() string { return e.err.Error() }
func (e *HookError) Unwrap() error { return e.err }

func hookMisuse(err error, format string, args ...any) {
	panic(&HookError{fmt.Errorf("%w: "+format, append([]any{err}, args...)...)})
}
