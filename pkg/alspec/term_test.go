package alspec

import (
	"context"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type TermSuite struct{}

func TestTerms(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(TermSuite{})
}

func (TermSuite) TestVariables(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)

	s, err := NewVar(sig, "s", "Stack")
	require.NoError(t, err)
	require.Equal(t, SortRef("Stack"), s.Sort())

	_, err = NewVar(sig, "q", "Queue")
	var unknown UnknownSortError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, SortRef("Queue"), unknown.Name)
}

func (TermSuite) TestApplicationSort(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)
	s, err := NewVar(sig, "s", "Stack")
	require.NoError(t, err)
	e, err := NewVar(sig, "e", "Elem")
	require.NoError(t, err)

	pushed, err := NewFnApp(sig, "push", s, e)
	require.NoError(t, err)
	require.Equal(t, SortRef("Stack"), pushed.Sort())

	topped, err := NewFnApp(sig, "top", pushed)
	require.NoError(t, err)
	require.Equal(t, SortRef("Elem"), topped.Sort())

	nw, err := NewConst(sig, "new")
	require.NoError(t, err)
	require.Equal(t, SortRef("Stack"), nw.Sort())
	require.Empty(t, nw.Args)
}

func (TermSuite) TestApplicationRejectsUnknownFunction(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)

	_, err := NewFnApp(sig, "reverse")
	var unknown UnknownFunctionError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "reverse", unknown.Name)
}

func (TermSuite) TestApplicationRejectsWrongArity(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)
	s, err := NewVar(sig, "s", "Stack")
	require.NoError(t, err)

	_, err = NewFnApp(sig, "push", s)
	var arity ArityMismatchError
	require.ErrorAs(t, err, &arity)
	require.Equal(t, "push", arity.Symbol)
	require.Equal(t, 2, arity.Want)
	require.Equal(t, 1, arity.Got)
}

func (TermSuite) TestApplicationRejectsIllSortedArgument(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)
	s, err := NewVar(sig, "s", "Stack")
	require.NoError(t, err)
	e, err := NewVar(sig, "e", "Elem")
	require.NoError(t, err)

	// Arguments swapped: push wants (Stack, Elem).
	_, err = NewFnApp(sig, "push", e, s)
	var mismatch SortMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, 0, mismatch.Position)
	require.Equal(t, SortRef("Stack"), mismatch.Expected)
	require.Equal(t, SortRef("Elem"), mismatch.Actual)
}

func (TermSuite) TestFieldAccess(ctx context.Context, t *testctx.T) {
	sig, err := NewSignatureBuilder().
		Atomic("Name").
		Atomic("Number").
		Product("Entry",
			ProductField{Name: "name", Sort: "Name"},
			ProductField{Name: "number", Sort: "Number"},
		).
		Build()
	require.NoError(t, err)

	entry, err := NewVar(sig, "entry", "Entry")
	require.NoError(t, err)

	number, err := NewFieldAccess(sig, entry, "number")
	require.NoError(t, err)
	require.Equal(t, SortRef("Number"), number.Sort())

	_, err = NewFieldAccess(sig, entry, "address")
	var unknown UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "address", unknown.Field)
	require.Equal(t, SortRef("Entry"), unknown.Sort)

	// Field access demands a product-sorted base.
	name, err := NewVar(sig, "n", "Name")
	require.NoError(t, err)
	_, err = NewFieldAccess(sig, name, "name")
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, SortRef("Name"), unknown.Sort)
}
