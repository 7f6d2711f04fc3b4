// Package arrayapi is the default array library the dispatch protocol proxies
// when synthesizing fallback modules. It provides the native NDArray value,
// elementwise Ufunc and higher-level Function descriptors, and a Namespace
// that classifies every exported name exactly once at construction time.
package arrayapi

import (
	"fmt"
	"sort"
)

// Kwargs carries keyword arguments through dispatch unchanged.
type Kwargs map[string]any

// SymbolKind classifies a namespace entry.
type SymbolKind int

const (
	// SymbolUnsupported marks a name that exists but participates in
	// neither dispatch protocol (constants, axis markers, and the like).
	SymbolUnsupported SymbolKind = iota

	// SymbolElementwise marks a universal elementwise operation.
	SymbolElementwise

	// SymbolHigherLevel marks a function-dispatch-capable function.
	SymbolHigherLevel
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolElementwise:
		return "elementwise"
	case SymbolHigherLevel:
		return "higher-level"
	default:
		return "unsupported"
	}
}

// Symbol is one classified namespace entry. Exactly one of Ufunc/Func is
// non-nil for the dispatchable kinds.
type Symbol struct {
	Kind  SymbolKind
	Ufunc *Ufunc
	Func  *Function
}

// Ufunc describes an elementwise operation with a declared input arity and
// concrete executors for its four call forms. A nil executor means the form
// is not provided by this operation.
type Ufunc struct {
	Name string
	NIn  int

	CallFn       func(args []*NDArray, kwargs Kwargs) (*NDArray, error)
	ReduceFn     func(a *NDArray, kwargs Kwargs) (*NDArray, error)
	AccumulateFn func(a *NDArray, kwargs Kwargs) (*NDArray, error)
	OuterFn      func(x, y *NDArray, kwargs Kwargs) (*NDArray, error)
}

// Call applies the operation to exactly NIn inputs.
func (u *Ufunc) Call(args []*NDArray, kwargs Kwargs) (*NDArray, error) {
	if u.CallFn == nil {
		return nil, fmt.Errorf("%s: call form not provided", u.Name)
	}
	if len(args) != u.NIn {
		return nil, fmt.Errorf("%s: expected %d inputs, got %d", u.Name, u.NIn, len(args))
	}
	return u.CallFn(args, kwargs)
}

// Reduce folds the operation over a single input.
func (u *Ufunc) Reduce(a *NDArray, kwargs Kwargs) (*NDArray, error) {
	if u.ReduceFn == nil {
		return nil, fmt.Errorf("%s: reduce form not provided", u.Name)
	}
	return u.ReduceFn(a, kwargs)
}

// Accumulate produces the running fold over a single input.
func (u *Ufunc) Accumulate(a *NDArray, kwargs Kwargs) (*NDArray, error) {
	if u.AccumulateFn == nil {
		return nil, fmt.Errorf("%s: accumulate form not provided", u.Name)
	}
	return u.AccumulateFn(a, kwargs)
}

// Outer applies the operation to every pair drawn from x and y.
func (u *Ufunc) Outer(x, y *NDArray, kwargs Kwargs) (*NDArray, error) {
	if u.OuterFn == nil {
		return nil, fmt.Errorf("%s: outer form not provided", u.Name)
	}
	return u.OuterFn(x, y, kwargs)
}

// Function describes a higher-level (non-elementwise) function. A non-nil
// implementation is the structural marker that the function participates in
// the function-dispatch protocol.
type Function struct {
	Name string
	impl func(args []any, kwargs Kwargs) (any, error)
}

// NewFunction builds a higher-level function descriptor.
func NewFunction(name string, impl func(args []any, kwargs Kwargs) (any, error)) *Function {
	return &Function{Name: name, impl: impl}
}

// Dispatchable reports whether the function carries an implementation and
// therefore participates in function dispatch.
func (f *Function) Dispatchable() bool { return f.impl != nil }

// Call invokes the implementation with the arguments unchanged.
func (f *Function) Call(args []any, kwargs Kwargs) (any, error) {
	if f.impl == nil {
		return nil, fmt.Errorf("%s: no implementation", f.Name)
	}
	return f.impl(args, kwargs)
}

// Namespace is a flat symbol table over one array library. Classification
// happens once at registration; lookups never reflect. Only the top level is
// addressable: there are no nested namespaces.
type Namespace struct {
	name    string
	symbols map[string]Symbol
}

// NewNamespace creates an empty namespace with the given display name.
func NewNamespace(name string) *Namespace {
	return &Namespace{name: name, symbols: make(map[string]Symbol)}
}

// Name returns the namespace display name.
func (ns *Namespace) Name() string { return ns.name }

// RegisterUfunc adds an elementwise operation. Duplicate names error.
func (ns *Namespace) RegisterUfunc(u *Ufunc) error {
	if u == nil || u.Name == "" {
		return fmt.Errorf("ufunc must have a name")
	}
	if _, exists := ns.symbols[u.Name]; exists {
		return fmt.Errorf("symbol %q already registered", u.Name)
	}
	ns.symbols[u.Name] = Symbol{Kind: SymbolElementwise, Ufunc: u}
	return nil
}

// RegisterFunc adds a higher-level function. A function without an
// implementation is recorded as unsupported: it exists, but neither dispatch
// protocol can use it.
func (ns *Namespace) RegisterFunc(f *Function) error {
	if f == nil || f.Name == "" {
		return fmt.Errorf("function must have a name")
	}
	if _, exists := ns.symbols[f.Name]; exists {
		return fmt.Errorf("symbol %q already registered", f.Name)
	}
	kind := SymbolHigherLevel
	if !f.Dispatchable() {
		kind = SymbolUnsupported
	}
	ns.symbols[f.Name] = Symbol{Kind: kind, Func: f}
	return nil
}

// RegisterOpaque records a name that is present in the library but is
// neither elementwise nor higher-level dispatched.
func (ns *Namespace) RegisterOpaque(name string) error {
	if name == "" {
		return fmt.Errorf("opaque symbol must have a name")
	}
	if _, exists := ns.symbols[name]; exists {
		return fmt.Errorf("symbol %q already registered", name)
	}
	ns.symbols[name] = Symbol{Kind: SymbolUnsupported}
	return nil
}

// Lookup returns the classified symbol for name.
func (ns *Namespace) Lookup(name string) (Symbol, bool) {
	sym, ok := ns.symbols[name]
	return sym, ok
}

// Names returns all registered names, sorted.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.symbols))
	for name := range ns.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered symbols.
func (ns *Namespace) Count() int { return len(ns.symbols) }

// Array builds a new native array, mirroring the library's constructor.
func (ns *Namespace) Array(data []float64, shape ...int) (*NDArray, error) {
	return New(append([]float64(nil), data...), shape...)
}

// AsArray coerces an existing value into the native form.
func (ns *Namespace) AsArray(v any) (*NDArray, error) {
	return AsArray(v)
}
