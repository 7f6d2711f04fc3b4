package dispatch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"arraymod/pkg/arrayapi"
)

// Fallback is a synthesized stand-in for a concrete implementation module,
// bound to exactly one owner instance. Every operation it hands out routes
// back through that instance's own dispatch hooks instead of executing
// against the default library directly.
type Fallback struct {
	ns        *arrayapi.Namespace
	owner     any
	ownerType reflect.Type
	ufuncHook UfuncDispatcher
	fnHook    FunctionDispatcher
	wrap      NativeWrapper
	id        string
	logger    *zap.Logger
}

// newFallback captures the owner instance's hooks at construction time. The
// registry has already verified the owner type implements them.
func newFallback(ns *arrayapi.Namespace, owner any, logger *zap.Logger) *Fallback {
	return &Fallback{
		ns:        ns,
		owner:     owner,
		ownerType: reflect.TypeOf(owner),
		ufuncHook: owner.(UfuncDispatcher),
		fnHook:    owner.(FunctionDispatcher),
		wrap:      owner.(NativeWrapper),
		id:        uuid.NewString()[:8],
		logger:    logger,
	}
}

// Name identifies the fallback for diagnostics.
func (f *Fallback) Name() string {
	return fmt.Sprintf("%s.fallback(%s)", f.ns.Name(), f.ownerType)
}

// Owner returns the instance this fallback is bound to.
func (f *Fallback) Owner() any { return f.owner }

// ID returns the trace id assigned at synthesis.
func (f *Fallback) ID() string { return f.id }

// Op looks up a named operation in the default library's classification
// table and wraps it in an adapter bound to the owner instance. Adapters are
// constructed fresh on every lookup. Only the namespace's top level is
// consulted; nested names do not resolve.
func (f *Fallback) Op(name string) (Operation, error) {
	if strings.Contains(name, ".") {
		return nil, fmt.Errorf("%w: nested name %q; only top-level operations are addressable", ErrUnsupportedOperation, name)
	}
	sym, ok := f.ns.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in namespace %s", ErrUnknownOperation, name, f.ns.Name())
	}

	switch sym.Kind {
	case arrayapi.SymbolElementwise:
		f.logger.Debug("bound elementwise operation",
			zap.String("op", name),
			zap.String("fallback_id", f.id))
		return newBoundUfunc(sym.Ufunc, f.ownerType, f.ufuncHook, f.wrap), nil

	case arrayapi.SymbolHigherLevel:
		f.logger.Debug("bound higher-level function",
			zap.String("op", name),
			zap.String("fallback_id", f.id))
		return newBoundFunction(sym.Func, f.ownerType, f.fnHook), nil

	default:
		return nil, fmt.Errorf("%w: %q for %s", ErrUnsupportedOperation, name, f.Name())
	}
}

// Array builds a new native value and re-wraps it as the owner type.
func (f *Fallback) Array(data []float64, shape ...int) (any, error) {
	a, err := f.ns.Array(data, shape...)
	if err != nil {
		return nil, err
	}
	return f.wrap.WrapNative(a), nil
}

// AsArray converts an existing value and re-wraps it as the owner type.
func (f *Fallback) AsArray(v any) (any, error) {
	a, err := f.ns.AsArray(v)
	if err != nil {
		return nil, err
	}
	return f.wrap.WrapNative(a), nil
}
