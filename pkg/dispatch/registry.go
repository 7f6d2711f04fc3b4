package dispatch

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"arraymod/pkg/arrayapi"
)

// Registry maps owner-type identity to its registration-time configuration:
// the declared known-type set and an optional concrete module. Registering a
// type here replaces mutating the type itself; resolution consults the
// registry explicitly on every call.
type Registry struct {
	mu      sync.RWMutex
	ns      *arrayapi.Namespace
	logger  *zap.Logger
	entries map[reflect.Type]*entry
}

type entry struct {
	owner  reflect.Type
	known  TypeSet
	module Module
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger for debug-level resolution tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a registry whose fallbacks proxy the given namespace.
func NewRegistry(ns *arrayapi.Namespace, opts ...Option) *Registry {
	r := &Registry{
		ns:      ns,
		logger:  zap.NewNop(),
		entries: make(map[reflect.Type]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	ufuncDispatcherType    = reflect.TypeOf((*UfuncDispatcher)(nil)).Elem()
	functionDispatcherType = reflect.TypeOf((*FunctionDispatcher)(nil)).Elem()
	nativeWrapperType      = reflect.TypeOf((*NativeWrapper)(nil)).Elem()
)

// Register declares ownerType as a dispatch participant. knownTypes are the
// other types its operations understand; they are copied and immutable after
// registration. When module is nil, ownerType must implement UfuncDispatcher,
// FunctionDispatcher and NativeWrapper so fallbacks can be synthesized; the
// check happens before any state changes.
func (r *Registry) Register(ownerType reflect.Type, knownTypes []reflect.Type, module Module) error {
	if ownerType == nil {
		return fmt.Errorf("owner type cannot be nil")
	}
	if module == nil {
		for _, hook := range []reflect.Type{ufuncDispatcherType, functionDispatcherType, nativeWrapperType} {
			if !ownerType.Implements(hook) {
				return fmt.Errorf("%w: %s does not implement %s", ErrMissingHooks, ownerType, hook)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[ownerType]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, ownerType)
	}
	r.entries[ownerType] = &entry{
		owner:  ownerType,
		known:  NewTypeSet(knownTypes...),
		module: module,
	}

	r.logger.Debug("registered owner type",
		zap.Stringer("owner", ownerType),
		zap.Int("known_types", len(knownTypes)),
		zap.Bool("explicit_module", module != nil))
	return nil
}

// MustRegister registers and panics on error. For static registration at
// program start.
func (r *Registry) MustRegister(ownerType reflect.Type, knownTypes []reflect.Type, module Module) {
	if err := r.Register(ownerType, knownTypes, module); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", ownerType, err))
	}
}

// Registered reports whether ownerType has an entry.
func (r *Registry) Registered(ownerType reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[ownerType]
	return ok
}

// Count returns the number of registered owner types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Resolve runs one resolution attempt on behalf of instance's type against
// the full set of participating operand types. It is re-evaluated on every
// call; nothing is cached. Compatible resolution yields the registered
// module unchanged, or a fresh fallback bound to instance when none was
// registered. Incompatible operand sets yield NotApplicable, not an error.
func (r *Registry) Resolve(instance any, operands []reflect.Type) (Resolution, error) {
	ownerType := reflect.TypeOf(instance)

	r.mu.RLock()
	e, ok := r.entries[ownerType]
	r.mu.RUnlock()
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrNotRegistered, ownerType)
	}

	if !Compatible(e.owner, e.known, operands) {
		r.logger.Debug("resolution not applicable",
			zap.Stringer("owner", ownerType),
			zap.Int("operand_types", len(operands)))
		return Resolution{State: NotApplicable}, nil
	}

	if e.module != nil {
		return Resolution{State: Resolved, Module: e.module}, nil
	}

	fb := newFallback(r.ns, instance, r.logger)
	r.logger.Debug("synthesized fallback module",
		zap.Stringer("owner", ownerType),
		zap.String("fallback_id", fb.id))
	return Resolution{State: Resolved, Module: fb}, nil
}

// ResolveFirst walks the distinct operand types in presentation order and
// asks each registered candidate in turn; the first Resolved answer wins.
// Unregistered candidates and NotApplicable answers fall through to the next
// candidate. If every candidate defers, the resolution as a whole is
// NotApplicable.
func (r *Registry) ResolveFirst(operands ...any) (Resolution, error) {
	types := TypesOf(operands...)
	for _, t := range types {
		if !r.Registered(t) {
			continue
		}
		inst := firstOfType(operands, t)
		res, err := r.Resolve(inst, types)
		if err != nil {
			return Resolution{}, err
		}
		if res.State == Resolved {
			return res, nil
		}
	}
	return Resolution{State: NotApplicable}, nil
}

func firstOfType(values []any, t reflect.Type) any {
	for _, v := range values {
		if reflect.TypeOf(v) == t {
			return v
		}
	}
	return nil
}
