// Package alspec is the data model for many-sorted algebraic
// specifications: sorts, typed function and predicate symbols, well-sorted
// terms, formulas over those terms, and whole specifications bundling a
// signature with axioms.
//
// Everything in this package is an immutable value with structural
// equality. Construction is the single validation checkpoint: an
// ill-sorted term or an ill-formed signature is rejected with a typed
// error by its constructor, so downstream consumers only ever see
// well-formed values. The JSON codec decodes through the same
// constructors, so nothing ill-sorted can enter through the wire either.
package alspec

import "slices"

// SortRef names a sort. Sorts are declared in a Signature and referenced
// by name everywhere else; using a distinct type keeps "this identifier
// denotes a sort" a checkable fact.
type SortRef string

func (r SortRef) String() string { return string(r) }

// SortKind discriminates the three sort declaration forms.
type SortKind string

const (
	KindAtomic    SortKind = "atomic"
	KindProduct   SortKind = "product"
	KindCoproduct SortKind = "coproduct"
)

// Sort is a sort declaration: an opaque carrier (AtomicSort), a record
// with named fields (ProductSort), or a tagged union (CoproductSort).
// The set of implementations is closed.
type Sort interface {
	SortName() SortRef
	Kind() SortKind

	sortDecl()
}

// AtomicSort is an opaque sort with no internal structure exposed to the
// model, e.g. Nat, Bool, Elem.
type AtomicSort struct {
	Name SortRef
}

var _ Sort = AtomicSort{}

func (s AtomicSort) SortName() SortRef { return s.Name }
func (s AtomicSort) Kind() SortKind    { return KindAtomic }
func (s AtomicSort) sortDecl()         {}

// ProductField is a named, typed field of a product sort.
type ProductField struct {
	Name string
	Sort SortRef
}

// ProductSort is a tuple-like sort with named fields, e.g.
// Pair(fst: Nat, snd: Nat). Field order is fixed at construction and
// significant.
type ProductSort struct {
	Name   SortRef
	Fields []ProductField
}

var _ Sort = ProductSort{}

// NewProductSort builds a product sort, rejecting duplicate field names.
func NewProductSort(name SortRef, fields ...ProductField) (ProductSort, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return ProductSort{}, DuplicateFieldError{Sort: name, Field: f.Name}
		}
		seen[f.Name] = true
	}
	return ProductSort{Name: name, Fields: slices.Clone(fields)}, nil
}

func (s ProductSort) SortName() SortRef { return s.Name }
func (s ProductSort) Kind() SortKind    { return KindProduct }
func (s ProductSort) sortDecl()         {}

// FieldSort looks up the sort of a field by name.
func (s ProductSort) FieldSort(field string) (SortRef, bool) {
	for _, f := range s.Fields {
		if f.Name == field {
			return f.Sort, true
		}
	}
	return "", false
}

// CoproductAlt is a tagged alternative of a coproduct sort.
type CoproductAlt struct {
	Tag  string
	Sort SortRef
}

// CoproductSort is a tagged union used for case-analysis sorts, e.g.
// Status = open(Unit) | resolved(Resolution). Alternative order is fixed
// at construction and significant.
type CoproductSort struct {
	Name SortRef
	Alts []CoproductAlt
}

var _ Sort = CoproductSort{}

// NewCoproductSort builds a coproduct sort, rejecting duplicate tags.
func NewCoproductSort(name SortRef, alts ...CoproductAlt) (CoproductSort, error) {
	seen := make(map[string]bool, len(alts))
	for _, a := range alts {
		if seen[a.Tag] {
			return CoproductSort{}, DuplicateVariantError{Sort: name, Tag: a.Tag}
		}
		seen[a.Tag] = true
	}
	return CoproductSort{Name: name, Alts: slices.Clone(alts)}, nil
}

func (s CoproductSort) SortName() SortRef { return s.Name }
func (s CoproductSort) Kind() SortKind    { return KindCoproduct }
func (s CoproductSort) sortDecl()         {}

// Tags returns the alternative tags in declaration order.
func (s CoproductSort) Tags() []string {
	tags := make([]string, len(s.Alts))
	for i, a := range s.Alts {
		tags[i] = a.Tag
	}
	return tags
}

// cloneSort detaches a sort declaration from any slices the caller still
// holds, so later mutation of those slices cannot reach a published
// signature.
func cloneSort(s Sort) Sort {
	switch s := s.(type) {
	case ProductSort:
		s.Fields = slices.Clone(s.Fields)
		return s
	case CoproductSort:
		s.Alts = slices.Clone(s.Alts)
		return s
	default:
		return s
	}
}
