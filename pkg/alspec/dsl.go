package alspec

// Builder helpers: the sanctioned construction surface for writing
// specifications in Go source. The helpers wrap the checked New*
// constructors; invariant violations are programming errors at the call
// site, so the term and formula helpers panic rather than return. Code
// handling external input (the codec, loaders) uses the New*
// constructors directly and gets typed errors.

// must unwraps a constructor result, panicking on invariant violations.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// P declares a named, typed parameter.
func P(name string, sort SortRef) Param {
	return Param{Name: name, Sort: sort}
}

// FnSym declares a total function symbol.
func FnSym(name string, result SortRef, params ...Param) FnSymbol {
	return FnSymbol{Name: name, Params: params, Result: result, Totality: Total}
}

// PartialFnSym declares a partial function symbol.
func PartialFnSym(name string, result SortRef, params ...Param) FnSymbol {
	return FnSymbol{Name: name, Params: params, Result: result, Totality: Partial}
}

// PredSym declares a predicate symbol.
func PredSym(name string, params ...Param) PredSymbol {
	return PredSymbol{Name: name, Params: params}
}

// SignatureBuilder accumulates declarations and defers failure to Build.
// The first error sticks; later declarations are ignored once one has
// failed.
type SignatureBuilder struct {
	sig *Signature
	err error
}

// NewSignatureBuilder starts from an empty signature.
func NewSignatureBuilder() *SignatureBuilder {
	return &SignatureBuilder{sig: NewSignature()}
}

func (b *SignatureBuilder) apply(f func(*Signature) (*Signature, error)) *SignatureBuilder {
	if b.err != nil {
		return b
	}
	sig, err := f(b.sig)
	if err != nil {
		b.err = err
		return b
	}
	b.sig = sig
	return b
}

// Atomic declares an atomic sort.
func (b *SignatureBuilder) Atomic(name SortRef) *SignatureBuilder {
	return b.apply(func(sig *Signature) (*Signature, error) {
		return sig.WithSort(AtomicSort{Name: name})
	})
}

// Product declares a product sort.
func (b *SignatureBuilder) Product(name SortRef, fields ...ProductField) *SignatureBuilder {
	return b.apply(func(sig *Signature) (*Signature, error) {
		s, err := NewProductSort(name, fields...)
		if err != nil {
			return nil, err
		}
		return sig.WithSort(s)
	})
}

// Coproduct declares a coproduct sort.
func (b *SignatureBuilder) Coproduct(name SortRef, alts ...CoproductAlt) *SignatureBuilder {
	return b.apply(func(sig *Signature) (*Signature, error) {
		s, err := NewCoproductSort(name, alts...)
		if err != nil {
			return nil, err
		}
		return sig.WithSort(s)
	})
}

// Fn declares a function symbol.
func (b *SignatureBuilder) Fn(f FnSymbol) *SignatureBuilder {
	return b.apply(func(sig *Signature) (*Signature, error) {
		return sig.WithFunction(f)
	})
}

// Pred declares a predicate symbol.
func (b *SignatureBuilder) Pred(p PredSymbol) *SignatureBuilder {
	return b.apply(func(sig *Signature) (*Signature, error) {
		return sig.WithPredicate(p)
	})
}

// Generated attaches a generated-sort declaration.
func (b *SignatureBuilder) Generated(sort SortRef, info GeneratedSortInfo) *SignatureBuilder {
	return b.apply(func(sig *Signature) (*Signature, error) {
		return sig.WithGeneratedSort(sort, info)
	})
}

// Build returns the accumulated signature, or the first declaration
// error.
func (b *SignatureBuilder) Build() (*Signature, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.sig, nil
}

// DSL builds terms and formulas against a fixed signature.
type DSL struct {
	Sig *Signature
}

// NewDSL wraps a finished signature for term and formula construction.
func NewDSL(sig *Signature) DSL {
	return DSL{Sig: sig}
}

// Var builds a variable of a declared sort.
func (d DSL) Var(name string, sort SortRef) Var {
	return must(NewVar(d.Sig, name, sort))
}

// App applies a function symbol.
func (d DSL) App(fn string, args ...Term) FnApp {
	return must(NewFnApp(d.Sig, fn, args...))
}

// Const applies a nullary function symbol.
func (d DSL) Const(fn string) FnApp {
	return must(NewConst(d.Sig, fn))
}

// Field projects a field out of a product-sorted term.
func (d DSL) Field(base Term, field string) FieldAccess {
	return must(NewFieldAccess(d.Sig, base, field))
}

// Pred applies a predicate symbol.
func (d DSL) Pred(pred string, args ...Term) PredApp {
	return must(NewPredApp(d.Sig, pred, args...))
}

// Eq builds a strong equation.
func (d DSL) Eq(left, right Term) StrongEquation {
	return must(NewStrongEquation(left, right))
}

// ExEq builds an existential equation.
func (d DSL) ExEq(left, right Term) ExistentialEquation {
	return must(NewExistentialEquation(left, right))
}

// Forall universally quantifies the given variables over body, nesting
// one binder per variable with the last variable innermost, matching the
// reading of ∀ x, y • body.
func (d DSL) Forall(vars []Var, body Formula) Formula {
	f := body
	for i := len(vars) - 1; i >= 0; i-- {
		f = must(NewUniversalQuant(d.Sig, vars[i].Name, vars[i].VarSort, f))
	}
	return f
}

// Exists existentially quantifies the given variables over body, nesting
// like Forall.
func (d DSL) Exists(vars []Var, body Formula) Formula {
	f := body
	for i := len(vars) - 1; i >= 0; i-- {
		f = must(NewExistentialQuant(d.Sig, vars[i].Name, vars[i].VarSort, f))
	}
	return f
}

// Connective helpers. No sort constraints apply to these, so they cannot
// fail.

// Not negates a formula.
func Not(f Formula) Negation {
	return Negation{Body: f}
}

// And conjoins two formulas.
func And(left, right Formula) Conjunction {
	return Conjunction{Left: left, Right: right}
}

// Or disjoins two formulas.
func Or(left, right Formula) Disjunction {
	return Disjunction{Left: left, Right: right}
}

// Implies builds antecedent ⇒ consequent.
func Implies(antecedent, consequent Formula) Implication {
	return Implication{Antecedent: antecedent, Consequent: consequent}
}

// Iff builds left ⇔ right.
func Iff(left, right Formula) Biconditional {
	return Biconditional{Left: left, Right: right}
}

// Def asserts that a term is defined.
func Def(t Term) Definedness {
	return Definedness{Of: t}
}
