package alspec

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"
)

type JSONSuite struct{}

func TestJSON(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(JSONSuite{})
}

func stackSpec(t *testctx.T) *Spec {
	sig := stackSignature(t)
	d := NewDSL(sig)
	s := d.Var("s", "Stack")
	e := d.Var("e", "Elem")

	sp, err := NewSpec("Stack", sig,
		Axiom{
			Label: "pop_push",
			Formula: d.Forall([]Var{s, e},
				d.Eq(d.App("pop", d.App("push", s, e)), s)),
		},
		Axiom{
			Label: "top_push",
			Formula: d.Forall([]Var{s, e},
				d.Eq(d.App("top", d.App("push", s, e)), e)),
		},
		Axiom{
			Label:   "empty_new",
			Formula: d.Pred("empty", d.Const("new")),
		},
	)
	require.NoError(t, err)
	return sp
}

func (JSONSuite) TestSpecRoundTrip(ctx context.Context, t *testctx.T) {
	sp := stackSpec(t)

	data, err := MarshalSpec(sp)
	require.NoError(t, err)

	back, err := UnmarshalSpec(data)
	require.NoError(t, err)
	require.Equal(t, sp, back)

	// Marshaling the decoded value reproduces the original bytes.
	again, err := MarshalSpec(back)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func (JSONSuite) TestDecodedStructure(ctx context.Context, t *testctx.T) {
	sp := stackSpec(t)

	data, err := MarshalSpec(sp)
	require.NoError(t, err)
	back, err := UnmarshalSpec(data)
	require.NoError(t, err)

	// top_push decodes to ∀ s • ∀ e • top(push(s, e)) = e, with the
	// application's result sort recomputed from the signature.
	outer, ok := back.Axioms[1].Formula.(UniversalQuant)
	require.True(t, ok)
	require.Equal(t, "s", outer.Bound.Name)
	inner, ok := outer.Body.(UniversalQuant)
	require.True(t, ok)
	require.Equal(t, "e", inner.Bound.Name)
	eq, ok := inner.Body.(StrongEquation)
	require.True(t, ok)
	top, ok := eq.Left.(FnApp)
	require.True(t, ok)
	require.Equal(t, "top", top.Fn)
	require.Equal(t, SortRef("Elem"), top.Sort())
	push, ok := top.Args[0].(FnApp)
	require.True(t, ok)
	require.Equal(t, "push", push.Fn)
	require.Equal(t, SortRef("Stack"), push.Sort())
}

func (JSONSuite) TestTermRoundTrip(ctx context.Context, t *testctx.T) {
	sig, err := NewSignatureBuilder().
		Atomic("Name").
		Atomic("Number").
		Product("Entry",
			ProductField{Name: "name", Sort: "Name"},
			ProductField{Name: "number", Sort: "Number"},
		).
		Fn(FnSym("entry_of", "Entry", P("n", "Name"))).
		Build()
	require.NoError(t, err)
	d := NewDSL(sig)

	term := Term(d.Field(d.App("entry_of", d.Var("n", "Name")), "number"))

	node := EncodeTerm(term)
	require.Equal(t, "FieldAccess", node["type"])

	back, err := DecodeTerm(sig, node)
	require.NoError(t, err)
	require.Equal(t, term, back)
	require.Equal(t, SortRef("Number"), back.Sort())
}

func (JSONSuite) TestFormulaVariantsRoundTrip(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)
	d := NewDSL(sig)
	s := d.Var("s", "Stack")
	e := d.Var("e", "Elem")
	empty := d.Pred("empty", s)

	formulas := []Formula{
		d.Eq(d.App("pop", d.App("push", s, e)), s),
		d.ExEq(d.App("top", s), e),
		empty,
		Not(empty),
		And(empty, Not(empty)),
		Or(empty, Not(empty)),
		Implies(Not(empty), Def(d.App("pop", s))),
		Iff(empty, d.Eq(s, d.Const("new"))),
		d.Forall([]Var{s, e}, empty),
		d.Exists([]Var{e}, d.Eq(d.App("top", s), e)),
		Def(d.App("top", s)),
	}

	for _, f := range formulas {
		node := EncodeFormula(f)
		back, err := DecodeFormula(sig, node)
		require.NoError(t, err)
		require.Equal(t, f, back)
	}
}

func (JSONSuite) TestDecodeRejectsUnknownNodeType(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)

	_, err := DecodeTerm(sig, map[string]any{"type": "Literal", "value": "1"})
	var unknown UnknownNodeTypeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Literal", unknown.Type)

	_, err = DecodeFormula(sig, map[string]any{"type": "Equation"})
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Equation", unknown.Type)
}

func (JSONSuite) TestDecodeRejectsMalformedNodes(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)

	var malformed MalformedNodeError

	// Not an object at all.
	_, err := DecodeTerm(sig, "push")
	require.ErrorAs(t, err, &malformed)

	// Missing the discriminator.
	_, err = DecodeTerm(sig, map[string]any{"name": "s"})
	require.ErrorAs(t, err, &malformed)

	// Missing a required field.
	_, err = DecodeFormula(sig, map[string]any{"type": "Negation"})
	require.ErrorAs(t, err, &malformed)
}

func (JSONSuite) TestDecodeRejectsIllSortedPayload(ctx context.Context, t *testctx.T) {
	sig := stackSignature(t)

	// push applied to (Elem, Stack): structurally fine, ill-sorted.
	raw := `{
		"type": "Application",
		"function": "push",
		"args": [
			{"type": "Variable", "name": "e", "sort": "Elem"},
			{"type": "Variable", "name": "s", "sort": "Stack"}
		]
	}`
	var node any
	require.NoError(t, json.Unmarshal([]byte(raw), &node))

	_, err := DecodeTerm(sig, node)
	var mismatch SortMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, 0, mismatch.Position)
	require.Equal(t, SortRef("Stack"), mismatch.Expected)
	require.Equal(t, SortRef("Elem"), mismatch.Actual)
}

func (JSONSuite) TestUnmarshalRejectsOpenAxiom(ctx context.Context, t *testctx.T) {
	sp := stackSpec(t)
	data, err := MarshalSpec(sp)
	require.NoError(t, err)

	// Strip the quantifiers off the first axiom, leaving s and e free.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	axioms := doc["axioms"].([]any)
	first := axioms[0].(map[string]any)
	quant := first["formula"].(map[string]any)
	first["formula"] = quant["body"].(map[string]any)["body"]

	mangled, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = UnmarshalSpec(mangled)
	var unbound UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	require.Equal(t, 0, unbound.Axiom)
}

func (JSONSuite) TestSignatureRoundTrip(ctx context.Context, t *testctx.T) {
	sig, err := NewSignatureBuilder().
		Atomic("Name").
		Atomic("Number").
		Atomic("Unit").
		Product("Entry",
			ProductField{Name: "name", Sort: "Name"},
			ProductField{Name: "number", Sort: "Number"},
		).
		Coproduct("LookupResult",
			CoproductAlt{Tag: "found", Sort: "Number"},
			CoproductAlt{Tag: "missing", Sort: "Unit"},
		).
		Fn(FnSym("mk_entry", "Entry", P("n", "Name"), P("num", "Number"))).
		Fn(PartialFnSym("lookup", "Number", P("n", "Name"))).
		Pred(PredSym("known", P("n", "Name"))).
		Build()
	require.NoError(t, err)

	node := EncodeSignature(sig)
	back, err := DecodeSignature(node)
	require.NoError(t, err)
	require.Equal(t, sig, back)
}
