package alspec

import (
	"fmt"
	"slices"
)

// Term is a well-sorted expression denoting a value of some sort. The
// set of implementations is closed: Var, FnApp, and FieldAccess. Every
// term carries the sort resolved for it at construction time; it is
// never recomputed later. Terms are immutable finite trees, so
// structural recursion over them always terminates.
type Term interface {
	// Sort is the resolved sort of this term.
	Sort() SortRef

	term()
}

// Var is a variable occurrence. Its sort is the one declared by the
// binder that introduced it.
type Var struct {
	Name    string
	VarSort SortRef
}

var _ Term = Var{}

// NewVar builds a variable of a declared sort.
func NewVar(sig *Signature, name string, sort SortRef) (Var, error) {
	if !sig.HasSort(sort) {
		return Var{}, UnknownSortError{Name: sort, Ref: fmt.Sprintf("variable %s", name)}
	}
	return Var{Name: name, VarSort: sort}, nil
}

func (v Var) Sort() SortRef { return v.VarSort }
func (v Var) term()         {}

// FnApp applies a declared function symbol to argument terms. Its sort
// is the function's declared result sort. A nullary application is a
// constant.
type FnApp struct {
	Fn     string
	Args   []Term
	Result SortRef
}

var _ Term = FnApp{}

// NewFnApp resolves fn in the signature and checks each argument sort
// against the declared profile, position by position, left to right. The
// first violation is the one reported.
func NewFnApp(sig *Signature, fn string, args ...Term) (FnApp, error) {
	f, ok := sig.Function(fn)
	if !ok {
		return FnApp{}, UnknownFunctionError{Name: fn}
	}
	if len(args) != f.Arity() {
		return FnApp{}, ArityMismatchError{Symbol: fn, Want: f.Arity(), Got: len(args)}
	}
	for i, arg := range args {
		if arg.Sort() != f.Params[i].Sort {
			return FnApp{}, SortMismatchError{
				Subject:  fmt.Sprintf("argument %d of %s", i, fn),
				Position: i,
				Expected: f.Params[i].Sort,
				Actual:   arg.Sort(),
			}
		}
	}
	return FnApp{Fn: fn, Args: slices.Clone(args), Result: f.Result}, nil
}

// NewConst builds an application of a nullary function symbol.
func NewConst(sig *Signature, fn string) (FnApp, error) {
	return NewFnApp(sig, fn)
}

func (a FnApp) Sort() SortRef { return a.Result }
func (a FnApp) term()         {}

// FieldAccess projects a named field out of a product-sorted term. Its
// sort is the field's declared sort.
type FieldAccess struct {
	Base      Term
	Field     string
	FieldSort SortRef
}

var _ Term = FieldAccess{}

// NewFieldAccess requires the base term's sort to be a product sort
// declaring the field.
func NewFieldAccess(sig *Signature, base Term, field string) (FieldAccess, error) {
	s, ok := sig.Sort(base.Sort())
	if !ok {
		return FieldAccess{}, UnknownSortError{Name: base.Sort(), Ref: "field access base"}
	}
	prod, ok := s.(ProductSort)
	if !ok {
		return FieldAccess{}, UnknownFieldError{Field: field, Sort: base.Sort()}
	}
	fieldSort, ok := prod.FieldSort(field)
	if !ok {
		return FieldAccess{}, UnknownFieldError{Field: field, Sort: base.Sort()}
	}
	return FieldAccess{Base: base, Field: field, FieldSort: fieldSort}, nil
}

func (f FieldAccess) Sort() SortRef { return f.FieldSort }
func (f FieldAccess) term()         {}
