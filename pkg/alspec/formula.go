package alspec

import (
	"fmt"
	"slices"
)

// Formula is a well-formed expression denoting a truth value, built from
// terms, connectives, and quantifiers. Formulas and terms are distinct
// categories: a formula has no sort and is never usable where a term is
// required. The set of implementations is closed; every consumer (the
// codec, the closedness validator, the formatter) dispatches
// exhaustively over it.
type Formula interface {
	formula()
}

// StrongEquation asserts that both sides are defined and equal, or both
// undefined. The distinction from ExistentialEquation is preserved as a
// node kind, not collapsed.
type StrongEquation struct {
	Left  Term
	Right Term
}

var _ Formula = StrongEquation{}

// NewStrongEquation requires both operands to have the same sort.
func NewStrongEquation(left, right Term) (StrongEquation, error) {
	if left.Sort() != right.Sort() {
		return StrongEquation{}, SortMismatchError{
			Subject:  "equation right-hand side",
			Position: 1,
			Expected: left.Sort(),
			Actual:   right.Sort(),
		}
	}
	return StrongEquation{Left: left, Right: right}, nil
}

func (StrongEquation) formula() {}

// ExistentialEquation asserts that both sides are defined and equal. It
// never holds when either side is undefined.
type ExistentialEquation struct {
	Left  Term
	Right Term
}

var _ Formula = ExistentialEquation{}

// NewExistentialEquation requires both operands to have the same sort.
func NewExistentialEquation(left, right Term) (ExistentialEquation, error) {
	if left.Sort() != right.Sort() {
		return ExistentialEquation{}, SortMismatchError{
			Subject:  "equation right-hand side",
			Position: 1,
			Expected: left.Sort(),
			Actual:   right.Sort(),
		}
	}
	return ExistentialEquation{Left: left, Right: right}, nil
}

func (ExistentialEquation) formula() {}

// PredApp applies a declared predicate symbol to argument terms.
type PredApp struct {
	Pred string
	Args []Term
}

var _ Formula = PredApp{}

// NewPredApp mirrors NewFnApp's arity and per-position sort checks
// against the predicate's profile.
func NewPredApp(sig *Signature, pred string, args ...Term) (PredApp, error) {
	p, ok := sig.Predicate(pred)
	if !ok {
		return PredApp{}, UnknownPredicateError{Name: pred}
	}
	if len(args) != p.Arity() {
		return PredApp{}, ArityMismatchError{Symbol: pred, Want: p.Arity(), Got: len(args)}
	}
	for i, arg := range args {
		if arg.Sort() != p.Params[i].Sort {
			return PredApp{}, SortMismatchError{
				Subject:  fmt.Sprintf("argument %d of %s", i, pred),
				Position: i,
				Expected: p.Params[i].Sort,
				Actual:   arg.Sort(),
			}
		}
	}
	return PredApp{Pred: pred, Args: slices.Clone(args)}, nil
}

func (PredApp) formula() {}

// Negation is logical negation of a formula.
type Negation struct {
	Body Formula
}

var _ Formula = Negation{}

func (Negation) formula() {}

// Conjunction is logical AND of two formulas.
type Conjunction struct {
	Left  Formula
	Right Formula
}

var _ Formula = Conjunction{}

func (Conjunction) formula() {}

// Disjunction is logical OR of two formulas.
type Disjunction struct {
	Left  Formula
	Right Formula
}

var _ Formula = Disjunction{}

func (Disjunction) formula() {}

// Implication is logical implication, antecedent ⇒ consequent.
type Implication struct {
	Antecedent Formula
	Consequent Formula
}

var _ Formula = Implication{}

func (Implication) formula() {}

// Biconditional is logical equivalence, left ⇔ right.
type Biconditional struct {
	Left  Formula
	Right Formula
}

var _ Formula = Biconditional{}

func (Biconditional) formula() {}

// UniversalQuant binds one variable over a body formula. The bound name
// shadows any outer variable of the same name within the body.
type UniversalQuant struct {
	Bound Var
	Body  Formula
}

var _ Formula = UniversalQuant{}

// NewUniversalQuant requires the bound sort to be declared in the
// ambient signature.
func NewUniversalQuant(sig *Signature, name string, sort SortRef, body Formula) (UniversalQuant, error) {
	v, err := NewVar(sig, name, sort)
	if err != nil {
		return UniversalQuant{}, err
	}
	return UniversalQuant{Bound: v, Body: body}, nil
}

func (UniversalQuant) formula() {}

// ExistentialQuant binds one variable over a body formula, with the same
// shadowing rule as UniversalQuant.
type ExistentialQuant struct {
	Bound Var
	Body  Formula
}

var _ Formula = ExistentialQuant{}

// NewExistentialQuant requires the bound sort to be declared in the
// ambient signature.
func NewExistentialQuant(sig *Signature, name string, sort SortRef, body Formula) (ExistentialQuant, error) {
	v, err := NewVar(sig, name, sort)
	if err != nil {
		return ExistentialQuant{}, err
	}
	return ExistentialQuant{Bound: v, Body: body}, nil
}

func (ExistentialQuant) formula() {}

// Definedness asserts that a term is defined under the eventual semantic
// interpretation. It wraps any term; no sort constraint applies.
type Definedness struct {
	Of Term
}

var _ Formula = Definedness{}

func (Definedness) formula() {}
