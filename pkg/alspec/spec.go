package alspec

import (
	"fmt"
	"slices"
)

// Axiom is a labeled, closed formula asserted to hold in every model of
// a specification.
type Axiom struct {
	Label   string
	Formula Formula
}

// Spec is a named specification: a signature plus an ordered sequence of
// axioms. Axiom order is preserved for reproducibility even though axiom
// truth is order-independent.
type Spec struct {
	Name      string
	Signature *Signature
	Axioms    []Axiom
}

// NewSpec validates that every axiom is closed — every variable
// occurrence is bound by an enclosing quantifier within that same axiom
// — and returns an immutable specification. An axiom with a free
// variable is rejected with UnboundVariableError, never silently treated
// as universally closed.
func NewSpec(name string, sig *Signature, axioms ...Axiom) (*Spec, error) {
	for i, ax := range axioms {
		if err := checkClosed(ax.Formula, i, ax.Label); err != nil {
			return nil, err
		}
	}
	return &Spec{Name: name, Signature: sig, Axioms: slices.Clone(axioms)}, nil
}

// WithAxiom validates the new axiom the same way NewSpec does and
// returns a new specification whose axiom sequence is this one's plus
// the new axiom. The receiver is left unmodified.
func (sp *Spec) WithAxiom(ax Axiom) (*Spec, error) {
	if err := checkClosed(ax.Formula, len(sp.Axioms), ax.Label); err != nil {
		return nil, err
	}
	axioms := make([]Axiom, 0, len(sp.Axioms)+1)
	axioms = append(axioms, sp.Axioms...)
	axioms = append(axioms, ax)
	return &Spec{Name: sp.Name, Signature: sp.Signature, Axioms: axioms}, nil
}

// scope is the lexical environment of quantifier bindings, innermost
// last.
type scope []Var

func (s scope) lookup(name string) (Var, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Name == name {
			return s[i], true
		}
	}
	return Var{}, false
}

func checkClosed(f Formula, axiom int, label string) error {
	return checkFormulaClosed(f, nil, axiom, label)
}

func checkFormulaClosed(f Formula, env scope, axiom int, label string) error {
	switch f := f.(type) {
	case StrongEquation:
		if err := checkTermClosed(f.Left, env, axiom, label); err != nil {
			return err
		}
		return checkTermClosed(f.Right, env, axiom, label)
	case ExistentialEquation:
		if err := checkTermClosed(f.Left, env, axiom, label); err != nil {
			return err
		}
		return checkTermClosed(f.Right, env, axiom, label)
	case PredApp:
		for _, arg := range f.Args {
			if err := checkTermClosed(arg, env, axiom, label); err != nil {
				return err
			}
		}
		return nil
	case Negation:
		return checkFormulaClosed(f.Body, env, axiom, label)
	case Conjunction:
		if err := checkFormulaClosed(f.Left, env, axiom, label); err != nil {
			return err
		}
		return checkFormulaClosed(f.Right, env, axiom, label)
	case Disjunction:
		if err := checkFormulaClosed(f.Left, env, axiom, label); err != nil {
			return err
		}
		return checkFormulaClosed(f.Right, env, axiom, label)
	case Implication:
		if err := checkFormulaClosed(f.Antecedent, env, axiom, label); err != nil {
			return err
		}
		return checkFormulaClosed(f.Consequent, env, axiom, label)
	case Biconditional:
		if err := checkFormulaClosed(f.Left, env, axiom, label); err != nil {
			return err
		}
		return checkFormulaClosed(f.Right, env, axiom, label)
	case UniversalQuant:
		return checkFormulaClosed(f.Body, append(env, f.Bound), axiom, label)
	case ExistentialQuant:
		return checkFormulaClosed(f.Body, append(env, f.Bound), axiom, label)
	case Definedness:
		return checkTermClosed(f.Of, env, axiom, label)
	default:
		panic(fmt.Sprintf("unhandled formula variant: %T", f))
	}
}

func checkTermClosed(t Term, env scope, axiom int, label string) error {
	switch t := t.(type) {
	case Var:
		bound, ok := env.lookup(t.Name)
		if !ok {
			return UnboundVariableError{Name: t.Name, Axiom: axiom, Label: label}
		}
		// The occurrence must agree with the innermost binder; an outer
		// binder of the same name is shadowed, not consulted.
		if bound.VarSort != t.VarSort {
			return SortMismatchError{
				Subject:  fmt.Sprintf("variable %s", t.Name),
				Expected: bound.VarSort,
				Actual:   t.VarSort,
			}
		}
		return nil
	case FnApp:
		for _, arg := range t.Args {
			if err := checkTermClosed(arg, env, axiom, label); err != nil {
				return err
			}
		}
		return nil
	case FieldAccess:
		return checkTermClosed(t.Base, env, axiom, label)
	default:
		panic(fmt.Sprintf("unhandled term variant: %T", t))
	}
}
