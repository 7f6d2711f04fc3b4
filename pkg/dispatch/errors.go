package dispatch

import "errors"

// Dispatch protocol errors. Incompatible operand types are NOT an error:
// they surface as a NotApplicable resolution so another candidate can try.
var (
	// ErrMissingHooks is returned when a type is registered without a module
	// but does not implement the required dispatch hooks.
	ErrMissingHooks = errors.New("owner type missing dispatch hooks")

	// ErrAlreadyRegistered is returned when registering a duplicate owner type.
	ErrAlreadyRegistered = errors.New("owner type already registered")

	// ErrNotRegistered is returned when resolving for an unregistered owner type.
	ErrNotRegistered = errors.New("owner type not registered")

	// ErrUnknownOperation is returned when a requested name is absent from
	// the default library's namespace.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUnsupportedOperation is returned when a name exists but is neither
	// elementwise nor higher-level dispatched.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrArity is returned when an elementwise call form receives the wrong
	// number of array inputs.
	ErrArity = errors.New("wrong number of array inputs")
)
