package alspec

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Totality distinguishes total function symbols from partial ones.
// A partial function may be undefined for some inputs; definedness is
// tracked explicitly via the Definedness formula.
type Totality string

const (
	Total   Totality = "total"
	Partial Totality = "partial"
)

// Param is a named, typed parameter of a function or predicate symbol.
type Param struct {
	Name string
	Sort SortRef
}

// FnSymbol is a function symbol with a profile:
//
//	new  :           Stack        (constant)
//	push : Stack × Elem → Stack   (binary total)
//	top  : Stack →? Elem          (partial)
type FnSymbol struct {
	Name     string
	Params   []Param
	Result   SortRef
	Totality Totality
}

// Arity returns the number of declared parameters.
func (f FnSymbol) Arity() int { return len(f.Params) }

// ParamSorts returns the argument sorts in declaration order.
func (f FnSymbol) ParamSorts() []SortRef {
	sorts := make([]SortRef, len(f.Params))
	for i, p := range f.Params {
		sorts[i] = p.Sort
	}
	return sorts
}

// IsConstant reports whether the symbol is nullary.
func (f FnSymbol) IsConstant() bool { return len(f.Params) == 0 }

// PredSymbol is a predicate symbol: a profile with no result sort. A
// predicate holds or does not hold; it never denotes a value.
type PredSymbol struct {
	Name   string
	Params []Param
}

// Arity returns the number of declared parameters.
func (p PredSymbol) Arity() int { return len(p.Params) }

// ParamSorts returns the argument sorts in declaration order.
func (p PredSymbol) ParamSorts() []SortRef {
	sorts := make([]SortRef, len(p.Params))
	for i, pp := range p.Params {
		sorts[i] = pp.Sort
	}
	return sorts
}

// SelectorDecl declares a selector: an observer that mechanically
// projects one constructor argument, together with the sort it projects
// to.
type SelectorDecl struct {
	Name   string
	Result SortRef
}

// ConstructorSelectors lists the selectors declared for one constructor,
// in declaration order.
type ConstructorSelectors struct {
	Constructor string
	Selectors   []SelectorDecl
}

// GeneratedSortInfo marks a sort as generated: its values are
// exhaustively built by the listed constructor functions. The metadata
// documents which declared symbols play constructor versus observer
// roles for downstream obligation analysis; it does not change how terms
// behave.
type GeneratedSortInfo struct {
	Constructors []string
	Selectors    []ConstructorSelectors
}

// orderedTable is an insertion-ordered, name-unique table. Lookup is by
// name; iteration follows declaration order, which the codec and the
// formatter rely on for deterministic output. with returns a new table,
// leaving the receiver untouched.
type orderedTable[V any] struct {
	names []string
	vals  map[string]V
}

func newOrderedTable[V any]() *orderedTable[V] {
	return &orderedTable[V]{vals: make(map[string]V)}
}

func (t *orderedTable[V]) get(name string) (V, bool) {
	v, ok := t.vals[name]
	return v, ok
}

func (t *orderedTable[V]) has(name string) bool {
	_, ok := t.vals[name]
	return ok
}

func (t *orderedTable[V]) with(name string, v V) *orderedTable[V] {
	vals := maps.Clone(t.vals)
	vals[name] = v
	return &orderedTable[V]{
		names: append(slices.Clone(t.names), name),
		vals:  vals,
	}
}

func (t *orderedTable[V]) len() int { return len(t.names) }

func (t *orderedTable[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, name := range t.names {
			if !yield(name, t.vals[name]) {
				return
			}
		}
	}
}

// Signature is the declared vocabulary of a specification: sorts, typed
// function symbols, typed predicate symbols, and generated-sort
// declarations. It is immutable once built; every With* operation
// returns a new Signature and leaves the receiver untouched, so any
// number of readers may share one without coordination.
type Signature struct {
	sorts      *orderedTable[Sort]
	functions  *orderedTable[FnSymbol]
	predicates *orderedTable[PredSymbol]
	generated  *orderedTable[GeneratedSortInfo]
}

// NewSignature returns an empty signature.
func NewSignature() *Signature {
	return &Signature{
		sorts:      newOrderedTable[Sort](),
		functions:  newOrderedTable[FnSymbol](),
		predicates: newOrderedTable[PredSymbol](),
		generated:  newOrderedTable[GeneratedSortInfo](),
	}
}

// WithSort declares a sort. Product and coproduct sorts may only
// reference sorts that are already declared, so sort declarations can
// never form a reference cycle.
func (sig *Signature) WithSort(s Sort) (*Signature, error) {
	name := s.SortName()
	if sig.sorts.has(string(name)) {
		return nil, DuplicateSymbolError{Name: string(name)}
	}
	switch s := s.(type) {
	case AtomicSort:
	case ProductSort:
		// Re-run the duplicate check: a struct literal can bypass
		// NewProductSort.
		if _, err := NewProductSort(s.Name, s.Fields...); err != nil {
			return nil, err
		}
		for _, f := range s.Fields {
			if !sig.sorts.has(string(f.Sort)) {
				return nil, UnknownSortError{Name: f.Sort, Ref: fmt.Sprintf("field %s of sort %s", f.Name, name)}
			}
		}
	case CoproductSort:
		if _, err := NewCoproductSort(s.Name, s.Alts...); err != nil {
			return nil, err
		}
		for _, a := range s.Alts {
			if !sig.sorts.has(string(a.Sort)) {
				return nil, UnknownSortError{Name: a.Sort, Ref: fmt.Sprintf("variant %s of sort %s", a.Tag, name)}
			}
		}
	default:
		panic(fmt.Sprintf("unhandled sort declaration: %T", s))
	}
	out := *sig
	out.sorts = sig.sorts.with(string(name), cloneSort(s))
	return &out, nil
}

// WithFunction declares a function symbol. Every sort in its profile
// must already be declared, and its name must not collide with any
// existing function or predicate.
func (sig *Signature) WithFunction(f FnSymbol) (*Signature, error) {
	if sig.functions.has(f.Name) || sig.predicates.has(f.Name) {
		return nil, DuplicateSymbolError{Name: f.Name}
	}
	for _, p := range f.Params {
		if !sig.sorts.has(string(p.Sort)) {
			return nil, UnknownSortError{Name: p.Sort, Ref: fmt.Sprintf("function %s", f.Name)}
		}
	}
	if !sig.sorts.has(string(f.Result)) {
		return nil, UnknownSortError{Name: f.Result, Ref: fmt.Sprintf("function %s", f.Name)}
	}
	if f.Totality == "" {
		f.Totality = Total
	}
	f.Params = slices.Clone(f.Params)
	out := *sig
	out.functions = sig.functions.with(f.Name, f)
	return &out, nil
}

// WithPredicate declares a predicate symbol under the same namespace and
// profile rules as WithFunction.
func (sig *Signature) WithPredicate(p PredSymbol) (*Signature, error) {
	if sig.functions.has(p.Name) || sig.predicates.has(p.Name) {
		return nil, DuplicateSymbolError{Name: p.Name}
	}
	for _, pp := range p.Params {
		if !sig.sorts.has(string(pp.Sort)) {
			return nil, UnknownSortError{Name: pp.Sort, Ref: fmt.Sprintf("predicate %s", p.Name)}
		}
	}
	p.Params = slices.Clone(p.Params)
	out := *sig
	out.predicates = sig.predicates.with(p.Name, p)
	return &out, nil
}

// WithGeneratedSort attaches constructor/selector metadata to a declared
// sort. Every listed constructor must be a declared function whose result
// sort is the target sort; every selector must be a declared function or
// predicate; selector blocks may only name listed constructors. At most
// one declaration may target a given sort.
func (sig *Signature) WithGeneratedSort(sort SortRef, info GeneratedSortInfo) (*Signature, error) {
	if !sig.sorts.has(string(sort)) {
		return nil, UnknownSortError{Name: sort, Ref: "generated-sort declaration"}
	}
	if sig.generated.has(string(sort)) {
		return nil, DuplicateGeneratedSortError{Sort: sort}
	}
	ctors := make(map[string]bool, len(info.Constructors))
	for _, ctor := range info.Constructors {
		if ctors[ctor] {
			return nil, DuplicateSymbolError{Name: ctor}
		}
		ctors[ctor] = true
		f, ok := sig.functions.get(ctor)
		if !ok {
			return nil, UnknownFunctionError{Name: ctor}
		}
		if f.Result != sort {
			return nil, WrongResultSortError{Constructor: ctor, Sort: sort, Result: f.Result}
		}
	}
	seenBlocks := make(map[string]bool, len(info.Selectors))
	for _, block := range info.Selectors {
		if seenBlocks[block.Constructor] {
			return nil, DuplicateSymbolError{Name: block.Constructor}
		}
		seenBlocks[block.Constructor] = true
		if !ctors[block.Constructor] {
			return nil, UnknownFunctionError{Name: block.Constructor}
		}
		for _, sel := range block.Selectors {
			if !sig.functions.has(sel.Name) && !sig.predicates.has(sel.Name) {
				return nil, UnknownObserverError{Selector: sel.Name, Sort: sort}
			}
		}
	}
	cloned := GeneratedSortInfo{
		Constructors: slices.Clone(info.Constructors),
		Selectors:    slices.Clone(info.Selectors),
	}
	out := *sig
	out.generated = sig.generated.with(string(sort), cloned)
	return &out, nil
}

// Sort looks up a sort declaration by name.
func (sig *Signature) Sort(name SortRef) (Sort, bool) {
	return sig.sorts.get(string(name))
}

// HasSort reports whether a sort is declared.
func (sig *Signature) HasSort(name SortRef) bool {
	return sig.sorts.has(string(name))
}

// Function looks up a function symbol by name.
func (sig *Signature) Function(name string) (FnSymbol, bool) {
	return sig.functions.get(name)
}

// Predicate looks up a predicate symbol by name.
func (sig *Signature) Predicate(name string) (PredSymbol, bool) {
	return sig.predicates.get(name)
}

// Generated looks up the generated-sort declaration for a sort.
func (sig *Signature) Generated(sort SortRef) (GeneratedSortInfo, bool) {
	return sig.generated.get(string(sort))
}

// Sorts iterates sort declarations in declaration order.
func (sig *Signature) Sorts() iter.Seq2[SortRef, Sort] {
	return func(yield func(SortRef, Sort) bool) {
		for name, s := range sig.sorts.all() {
			if !yield(SortRef(name), s) {
				return
			}
		}
	}
}

// Functions iterates function symbols in declaration order.
func (sig *Signature) Functions() iter.Seq2[string, FnSymbol] {
	return sig.functions.all()
}

// Predicates iterates predicate symbols in declaration order.
func (sig *Signature) Predicates() iter.Seq2[string, PredSymbol] {
	return sig.predicates.all()
}

// GeneratedSorts iterates generated-sort declarations in declaration
// order.
func (sig *Signature) GeneratedSorts() iter.Seq2[SortRef, GeneratedSortInfo] {
	return func(yield func(SortRef, GeneratedSortInfo) bool) {
		for name, info := range sig.generated.all() {
			if !yield(SortRef(name), info) {
				return
			}
		}
	}
}
