// Package examples holds fully built specifications exercising every
// construct in the data model: all three sort forms, total and partial
// functions, predicates, generated sorts with selectors, and every term
// and formula variant. They double as documentation of the builder
// surface and as the corpus for the golden-file tests.
package examples

import (
	"github.com/vito/alspec/pkg/alspec"
)

// Stack is the classic LIFO stack: two constructors (new, push), two
// partial observers (pop, top, both undefined on the empty stack), and
// an emptiness predicate.
func Stack() *alspec.Spec {
	sig, err := alspec.NewSignatureBuilder().
		Atomic("Stack").
		Atomic("Elem").
		Fn(alspec.FnSym("new", "Stack")).
		Fn(alspec.FnSym("push", "Stack", alspec.P("s", "Stack"), alspec.P("e", "Elem"))).
		Fn(alspec.PartialFnSym("pop", "Stack", alspec.P("s", "Stack"))).
		Fn(alspec.PartialFnSym("top", "Elem", alspec.P("s", "Stack"))).
		Pred(alspec.PredSym("empty", alspec.P("s", "Stack"))).
		Generated("Stack", alspec.GeneratedSortInfo{
			Constructors: []string{"new", "push"},
			Selectors: []alspec.ConstructorSelectors{
				{Constructor: "push", Selectors: []alspec.SelectorDecl{
					{Name: "pop", Result: "Stack"},
					{Name: "top", Result: "Elem"},
				}},
			},
		}).
		Build()
	if err != nil {
		panic(err)
	}

	d := alspec.NewDSL(sig)
	s := d.Var("s", "Stack")
	e := d.Var("e", "Elem")

	spec, err := alspec.NewSpec("Stack", sig,
		alspec.Axiom{
			Label: "pop_push",
			Formula: d.Forall([]alspec.Var{s, e},
				d.Eq(d.App("pop", d.App("push", s, e)), s)),
		},
		alspec.Axiom{
			Label: "top_push",
			Formula: d.Forall([]alspec.Var{s, e},
				d.Eq(d.App("top", d.App("push", s, e)), e)),
		},
		alspec.Axiom{
			Label:   "empty_new",
			Formula: d.Pred("empty", d.Const("new")),
		},
		alspec.Axiom{
			Label: "not_empty_push",
			Formula: d.Forall([]alspec.Var{s, e},
				alspec.Not(d.Pred("empty", d.App("push", s, e)))),
		},
	)
	if err != nil {
		panic(err)
	}
	return spec
}

// Queue is a FIFO queue. Unlike Stack, dequeue and front cannot simply
// undo the outermost enqueue, so their axioms split on the shape of the
// inner queue: a singleton enqueue is the base case and a nested enqueue
// recurses toward the front.
func Queue() *alspec.Spec {
	sig, err := alspec.NewSignatureBuilder().
		Atomic("Queue").
		Atomic("Elem").
		Fn(alspec.FnSym("empty", "Queue")).
		Fn(alspec.FnSym("enqueue", "Queue", alspec.P("q", "Queue"), alspec.P("e", "Elem"))).
		Fn(alspec.PartialFnSym("dequeue", "Queue", alspec.P("q", "Queue"))).
		Fn(alspec.PartialFnSym("front", "Elem", alspec.P("q", "Queue"))).
		Generated("Queue", alspec.GeneratedSortInfo{
			Constructors: []string{"empty", "enqueue"},
		}).
		Build()
	if err != nil {
		panic(err)
	}

	d := alspec.NewDSL(sig)
	q := d.Var("q", "Queue")
	e := d.Var("e", "Elem")
	e1 := d.Var("e1", "Elem")
	e2 := d.Var("e2", "Elem")

	spec, err := alspec.NewSpec("FIFOQueue", sig,
		alspec.Axiom{
			Label:   "dequeue_empty_undef",
			Formula: alspec.Not(alspec.Def(d.App("dequeue", d.Const("empty")))),
		},
		alspec.Axiom{
			Label: "dequeue_empty_enqueue",
			Formula: d.Forall([]alspec.Var{e},
				d.Eq(d.App("dequeue", d.App("enqueue", d.Const("empty"), e)), d.Const("empty"))),
		},
		alspec.Axiom{
			Label: "dequeue_nonempty_enqueue",
			Formula: d.Forall([]alspec.Var{q, e1, e2},
				d.Eq(
					d.App("dequeue", d.App("enqueue", d.App("enqueue", q, e1), e2)),
					d.App("enqueue", d.App("dequeue", d.App("enqueue", q, e1)), e2))),
		},
		alspec.Axiom{
			Label:   "front_empty_undef",
			Formula: alspec.Not(alspec.Def(d.App("front", d.Const("empty")))),
		},
		alspec.Axiom{
			Label: "front_empty_enqueue",
			Formula: d.Forall([]alspec.Var{e},
				d.Eq(d.App("front", d.App("enqueue", d.Const("empty"), e)), e)),
		},
		alspec.Axiom{
			Label: "front_nonempty_enqueue",
			Formula: d.Forall([]alspec.Var{q, e1, e2},
				d.Eq(
					d.App("front", d.App("enqueue", d.App("enqueue", q, e1), e2)),
					d.App("front", d.App("enqueue", q, e1)))),
		},
	)
	if err != nil {
		panic(err)
	}
	return spec
}

// Counter is a counter over integers with four constructors and a single
// total observer. The Int helpers (zero, succ, pred) are uninterpreted
// basis operations.
func Counter() *alspec.Spec {
	sig, err := alspec.NewSignatureBuilder().
		Atomic("Counter").
		Atomic("Int").
		Fn(alspec.FnSym("new", "Counter")).
		Fn(alspec.FnSym("inc", "Counter", alspec.P("c", "Counter"))).
		Fn(alspec.FnSym("dec", "Counter", alspec.P("c", "Counter"))).
		Fn(alspec.FnSym("reset", "Counter", alspec.P("c", "Counter"))).
		Fn(alspec.FnSym("get_value", "Int", alspec.P("c", "Counter"))).
		Fn(alspec.FnSym("zero", "Int")).
		Fn(alspec.FnSym("succ", "Int", alspec.P("n", "Int"))).
		Fn(alspec.FnSym("pred", "Int", alspec.P("n", "Int"))).
		Generated("Counter", alspec.GeneratedSortInfo{
			Constructors: []string{"new", "inc", "dec", "reset"},
		}).
		Build()
	if err != nil {
		panic(err)
	}

	d := alspec.NewDSL(sig)
	c := d.Var("c", "Counter")

	spec, err := alspec.NewSpec("SimpleCounter", sig,
		alspec.Axiom{
			Label:   "get_value_new",
			Formula: d.Eq(d.App("get_value", d.Const("new")), d.Const("zero")),
		},
		alspec.Axiom{
			Label: "get_value_inc",
			Formula: d.Forall([]alspec.Var{c},
				d.Eq(d.App("get_value", d.App("inc", c)), d.App("succ", d.App("get_value", c)))),
		},
		alspec.Axiom{
			Label: "get_value_dec",
			Formula: d.Forall([]alspec.Var{c},
				d.Eq(d.App("get_value", d.App("dec", c)), d.App("pred", d.App("get_value", c)))),
		},
		alspec.Axiom{
			Label: "get_value_reset",
			Formula: d.Forall([]alspec.Var{c},
				d.Eq(d.App("get_value", d.App("reset", c)), d.Const("zero"))),
		},
	)
	if err != nil {
		panic(err)
	}
	return spec
}

// PhoneBook maps names to numbers. It exercises the sort forms the other
// examples do not: Entry is a product sort accessed via field
// projection, and LookupResult is a coproduct. lookup is partial, so its
// axioms use existential equality and definedness.
func PhoneBook() *alspec.Spec {
	sig, err := alspec.NewSignatureBuilder().
		Atomic("PhoneBook").
		Atomic("Name").
		Atomic("Number").
		Atomic("Unit").
		Product("Entry",
			alspec.ProductField{Name: "name", Sort: "Name"},
			alspec.ProductField{Name: "number", Sort: "Number"},
		).
		Coproduct("LookupResult",
			alspec.CoproductAlt{Tag: "found", Sort: "Number"},
			alspec.CoproductAlt{Tag: "missing", Sort: "Unit"},
		).
		Fn(alspec.FnSym("empty_book", "PhoneBook")).
		Fn(alspec.FnSym("add_entry", "PhoneBook", alspec.P("b", "PhoneBook"), alspec.P("en", "Entry"))).
		Fn(alspec.PartialFnSym("lookup", "Number", alspec.P("b", "PhoneBook"), alspec.P("n", "Name"))).
		Fn(alspec.FnSym("find", "LookupResult", alspec.P("b", "PhoneBook"), alspec.P("n", "Name"))).
		Pred(alspec.PredSym("has_entry", alspec.P("b", "PhoneBook"), alspec.P("n", "Name"))).
		Generated("PhoneBook", alspec.GeneratedSortInfo{
			Constructors: []string{"empty_book", "add_entry"},
		}).
		Build()
	if err != nil {
		panic(err)
	}

	d := alspec.NewDSL(sig)
	b := d.Var("b", "PhoneBook")
	en := d.Var("en", "Entry")
	n := d.Var("n", "Name")
	b2 := d.Var("b2", "PhoneBook")

	spec, err := alspec.NewSpec("PhoneBook", sig,
		alspec.Axiom{
			Label: "lookup_add",
			Formula: d.Forall([]alspec.Var{b, en},
				d.ExEq(
					d.App("lookup", d.App("add_entry", b, en), d.Field(en, "name")),
					d.Field(en, "number"))),
		},
		alspec.Axiom{
			Label: "has_entry_empty",
			Formula: d.Forall([]alspec.Var{n},
				alspec.Not(d.Pred("has_entry", d.Const("empty_book"), n))),
		},
		alspec.Axiom{
			Label: "has_entry_add",
			Formula: d.Forall([]alspec.Var{b, en, n},
				alspec.Iff(
					d.Pred("has_entry", d.App("add_entry", b, en), n),
					alspec.Or(
						d.Eq(n, d.Field(en, "name")),
						d.Pred("has_entry", b, n)))),
		},
		alspec.Axiom{
			Label: "lookup_defined",
			Formula: d.Forall([]alspec.Var{b, n},
				alspec.Implies(
					d.Pred("has_entry", b, n),
					alspec.Def(d.App("lookup", b, n)))),
		},
		alspec.Axiom{
			Label: "add_reachable",
			Formula: d.Forall([]alspec.Var{b, en},
				d.Exists([]alspec.Var{b2},
					alspec.And(
						d.Eq(b2, d.App("add_entry", b, en)),
						d.Pred("has_entry", b2, d.Field(en, "name"))))),
		},
	)
	if err != nil {
		panic(err)
	}
	return spec
}

// BankAccount is a state machine with a partial constructor: withdraw is
// undefined on insufficient funds, its domain pinned by a definedness
// biconditional, and the balance-after-withdraw equation is guarded so it
// does not accidentally assert withdraw total.
func BankAccount() *alspec.Spec {
	sig, err := alspec.NewSignatureBuilder().
		Atomic("Account").
		Atomic("Amount").
		Fn(alspec.FnSym("empty", "Account")).
		Fn(alspec.FnSym("deposit", "Account", alspec.P("a", "Account"), alspec.P("m", "Amount"))).
		Fn(alspec.PartialFnSym("withdraw", "Account", alspec.P("a", "Account"), alspec.P("m", "Amount"))).
		Fn(alspec.FnSym("balance", "Amount", alspec.P("a", "Account"))).
		Fn(alspec.FnSym("zero", "Amount")).
		Fn(alspec.FnSym("add", "Amount", alspec.P("m1", "Amount"), alspec.P("m2", "Amount"))).
		Fn(alspec.FnSym("sub", "Amount", alspec.P("m1", "Amount"), alspec.P("m2", "Amount"))).
		Pred(alspec.PredSym("geq", alspec.P("m1", "Amount"), alspec.P("m2", "Amount"))).
		Generated("Account", alspec.GeneratedSortInfo{
			Constructors: []string{"empty", "deposit", "withdraw"},
		}).
		Build()
	if err != nil {
		panic(err)
	}

	d := alspec.NewDSL(sig)
	a := d.Var("a", "Account")
	m := d.Var("m", "Amount")

	spec, err := alspec.NewSpec("BankAccount", sig,
		alspec.Axiom{
			Label:   "balance_empty",
			Formula: d.Eq(d.App("balance", d.Const("empty")), d.Const("zero")),
		},
		alspec.Axiom{
			Label: "balance_deposit",
			Formula: d.Forall([]alspec.Var{a, m},
				d.Eq(
					d.App("balance", d.App("deposit", a, m)),
					d.App("add", d.App("balance", a), m))),
		},
		alspec.Axiom{
			Label: "withdraw_definedness",
			Formula: d.Forall([]alspec.Var{a, m},
				alspec.Iff(
					alspec.Def(d.App("withdraw", a, m)),
					d.Pred("geq", d.App("balance", a), m))),
		},
		alspec.Axiom{
			Label: "balance_withdraw",
			Formula: d.Forall([]alspec.Var{a, m},
				alspec.Implies(
					d.Pred("geq", d.App("balance", a), m),
					d.Eq(
						d.App("balance", d.App("withdraw", a, m)),
						d.App("sub", d.App("balance", a), m)))),
		},
	)
	if err != nil {
		panic(err)
	}
	return spec
}

// All returns every example specification, in a stable order.
func All() []*alspec.Spec {
	return []*alspec.Spec{Stack(), Queue(), Counter(), BankAccount(), PhoneBook()}
}
