package alspec

import "fmt"

// UnknownSortError reports a reference to a sort that is not declared in
// the signature.
type UnknownSortError struct {
	Name SortRef // the undeclared sort
	Ref  string  // what referenced it (a sort, a symbol profile, or a binder)
}

func (e UnknownSortError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("unknown sort: %s", e.Name)
	}
	return fmt.Sprintf("unknown sort %s referenced by %s", e.Name, e.Ref)
}

// UnknownFunctionError reports an application of an undeclared function
// symbol.
type UnknownFunctionError struct {
	Name string
}

func (e UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function: %s", e.Name)
}

// UnknownPredicateError reports an application of an undeclared predicate
// symbol.
type UnknownPredicateError struct {
	Name string
}

func (e UnknownPredicateError) Error() string {
	return fmt.Sprintf("unknown predicate: %s", e.Name)
}

// UnknownFieldError reports a field access against a sort that is not a
// product sort or does not declare the field.
type UnknownFieldError struct {
	Field string
	Sort  SortRef // the sort of the base term
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("sort %s has no field %q", e.Sort, e.Field)
}

// UnknownObserverError reports a selector in a generated-sort declaration
// that is not a declared function or predicate.
type UnknownObserverError struct {
	Selector string
	Sort     SortRef // the generated sort being declared
}

func (e UnknownObserverError) Error() string {
	return fmt.Sprintf("selector %q of generated sort %s is not a declared function or predicate", e.Selector, e.Sort)
}

// ArityMismatchError reports an application with the wrong number of
// arguments for the symbol's declared profile.
type ArityMismatchError struct {
	Symbol string
	Want   int
	Got    int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf("%s expects %d arguments, got %d", e.Symbol, e.Want, e.Got)
}

// SortMismatchError reports a term whose sort disagrees with what its
// context requires. Positions are checked left to right and the first
// violation is reported, so diagnostics are deterministic.
type SortMismatchError struct {
	Subject  string // what was being matched, when a position alone is unclear
	Position int
	Expected SortRef
	Actual   SortRef
}

func (e SortMismatchError) Error() string {
	where := fmt.Sprintf("position %d", e.Position)
	if e.Subject != "" {
		where = e.Subject
	}
	return fmt.Sprintf("sort mismatch at %s: expected %s, actual %s", where, e.Expected, e.Actual)
}

// DuplicateSymbolError reports a name collision in one of the signature
// tables. Functions and predicates share a namespace for collision
// purposes, since both are symbols.
type DuplicateSymbolError struct {
	Name string
}

func (e DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol: %s", e.Name)
}

// DuplicateFieldError reports a repeated field name within one product
// sort.
type DuplicateFieldError struct {
	Sort  SortRef
	Field string
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q in sort %s", e.Field, e.Sort)
}

// DuplicateVariantError reports a repeated tag within one coproduct sort.
type DuplicateVariantError struct {
	Sort SortRef
	Tag  string
}

func (e DuplicateVariantError) Error() string {
	return fmt.Sprintf("duplicate variant %q in sort %s", e.Tag, e.Sort)
}

// DuplicateGeneratedSortError reports a second generated-sort declaration
// targeting a sort that already has one.
type DuplicateGeneratedSortError struct {
	Sort SortRef
}

func (e DuplicateGeneratedSortError) Error() string {
	return fmt.Sprintf("sort %s already has a generated-sort declaration", e.Sort)
}

// WrongResultSortError reports a declared constructor whose result sort
// disagrees with the generated sort it is attached to.
type WrongResultSortError struct {
	Constructor string
	Sort        SortRef // the generated sort
	Result      SortRef // the constructor's declared result sort
}

func (e WrongResultSortError) Error() string {
	return fmt.Sprintf("constructor %s of generated sort %s has result sort %s, want %s", e.Constructor, e.Sort, e.Result, e.Sort)
}

// UnboundVariableError reports a variable occurrence in an axiom with no
// enclosing quantifier binding it.
type UnboundVariableError struct {
	Name  string
	Axiom int    // index of the offending axiom
	Label string // its label, when it has one
}

func (e UnboundVariableError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("unbound variable %q in axiom %d (%s)", e.Name, e.Axiom, e.Label)
	}
	return fmt.Sprintf("unbound variable %q in axiom %d", e.Name, e.Axiom)
}

// UnknownNodeTypeError reports an unrecognized "type" discriminator in the
// interchange representation.
type UnknownNodeTypeError struct {
	Type string
}

func (e UnknownNodeTypeError) Error() string {
	return fmt.Sprintf("unknown node type: %q", e.Type)
}

// MalformedNodeError reports an interchange node with a missing or
// mistyped field.
type MalformedNodeError struct {
	Type   string // node type being decoded, when known
	Field  string
	Reason string
}

func (e MalformedNodeError) Error() string {
	msg := "malformed node"
	if e.Type != "" {
		msg = fmt.Sprintf("malformed %s node", e.Type)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, e.Field)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	return msg
}
