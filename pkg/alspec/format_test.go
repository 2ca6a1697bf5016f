package alspec

import (
	"context"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type FormatSuite struct{}

func TestFormat(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(FormatSuite{})
}

func (FormatSuite) TestDeclarations(ctx context.Context, t *testctx.T) {
	entry, err := NewProductSort("Entry",
		ProductField{Name: "name", Sort: "Name"},
		ProductField{Name: "number", Sort: "Number"},
	)
	require.NoError(t, err)
	result, err := NewCoproductSort("LookupResult",
		CoproductAlt{Tag: "found", Sort: "Number"},
		CoproductAlt{Tag: "missing", Sort: "Unit"},
	)
	require.NoError(t, err)

	require.Equal(t, "sort Stack", FormatSort(AtomicSort{Name: "Stack"}))
	require.Equal(t, "sort Entry = (name : Name, number : Number)", FormatSort(entry))
	require.Equal(t, "sort LookupResult = found : Number | missing : Unit", FormatSort(result))

	require.Equal(t, "op new : Stack", FormatFnSymbol(FnSym("new", "Stack")))
	require.Equal(t, "op bottom :? Elem", FormatFnSymbol(PartialFnSym("bottom", "Elem")))
	require.Equal(t, "op push : Stack × Elem → Stack",
		FormatFnSymbol(FnSym("push", "Stack", P("s", "Stack"), P("e", "Elem"))))
	require.Equal(t, "op pop : Stack →? Stack",
		FormatFnSymbol(PartialFnSym("pop", "Stack", P("s", "Stack"))))

	require.Equal(t, "pred empty : Stack", FormatPredSymbol(PredSym("empty", P("s", "Stack"))))
}

func (FormatSuite) TestTerms(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)
	d := NewDSL(sig)
	s := d.Var("s", "Stack")
	e := d.Var("e", "Elem")

	require.Equal(t, "s", FormatTerm(s))
	require.Equal(t, "new", FormatTerm(d.Const("new")))
	require.Equal(t, "pop(push(s, e))", FormatTerm(d.App("pop", d.App("push", s, e))))
}

func (FormatSuite) TestFormulaPrecedence(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)
	d := NewDSL(sig)
	s := d.Var("s", "Stack")
	e := d.Var("e", "Elem")
	p := d.Pred("empty", s)

	tests := []struct {
		name     string
		formula  Formula
		expected string
	}{
		{
			name:     "negation binds tighter than conjunction",
			formula:  And(Not(p), p),
			expected: "¬ empty(s) ∧ empty(s)",
		},
		{
			name:     "negated conjunction is parenthesized",
			formula:  Not(And(p, p)),
			expected: "¬ (empty(s) ∧ empty(s))",
		},
		{
			name:     "disjunction under conjunction is parenthesized",
			formula:  And(Or(p, p), p),
			expected: "(empty(s) ∨ empty(s)) ∧ empty(s)",
		},
		{
			name:     "implication associates to the right",
			formula:  Implies(p, Implies(p, p)),
			expected: "empty(s) ⇒ empty(s) ⇒ empty(s)",
		},
		{
			name:     "nested antecedent is parenthesized",
			formula:  Implies(Implies(p, p), p),
			expected: "(empty(s) ⇒ empty(s)) ⇒ empty(s)",
		},
		{
			name:     "biconditional of implications",
			formula:  Iff(Implies(p, p), p),
			expected: "empty(s) ⇒ empty(s) ⇔ empty(s)",
		},
		{
			name:     "definedness is atomic",
			formula:  Implies(Not(p), Def(d.App("pop", s))),
			expected: "¬ empty(s) ⇒ def pop(s)",
		},
		{
			name:     "quantifier run flattens",
			formula:  d.Forall([]Var{s, e}, d.Eq(d.App("top", d.App("push", s, e)), e)),
			expected: "∀ s : Stack, e : Elem • top(push(s, e)) = e",
		},
		{
			name:     "alternating quantifiers stay separate",
			formula:  d.Forall([]Var{s}, d.Exists([]Var{e}, d.ExEq(d.App("top", s), e))),
			expected: "∀ s : Stack • ∃ e : Elem • top(s) =e= e",
		},
		{
			name:     "quantifier under connective is parenthesized",
			formula:  And(d.Forall([]Var{s}, p), d.Pred("empty", d.Const("new"))),
			expected: "(∀ s : Stack • empty(s)) ∧ empty(new)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(ctx context.Context, t *testctx.T) {
			require.Equal(t, tt.expected, FormatFormula(tt.formula))
		})
	}
}

func (FormatSuite) TestSpec(ctx context.Context, t *testctx.T) {
	sp := stackSpec(t)

	expected := `spec Stack =
	sort Stack
	sort Elem
	op new : Stack
	op push : Stack × Elem → Stack
	op pop : Stack →? Stack
	op top : Stack →? Elem
	pred empty : Stack
	generated Stack ::= new | push (pop : Stack, top : Elem)
	• ∀ s : Stack, e : Elem • pop(push(s, e)) = s  %(pop_push)%
	• ∀ s : Stack, e : Elem • top(push(s, e)) = e  %(top_push)%
	• empty(new)  %(empty_new)%
end
`
	require.Equal(t, expected, FormatSpec(sp))
}
