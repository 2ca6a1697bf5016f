package alspec

import (
	"bytes"
	"fmt"
	"strings"
)

const indentString = "\t"

// Formula precedence levels for rendering, loosest first. A child at a
// looser level than its context gets parenthesized.
const (
	precQuantifier = iota
	precIff
	precImplies
	precOr
	precAnd
	precNot
	precAtom
)

// FormatSpec renders a specification in CASL-style concrete syntax.
// Output is deterministic: declarations render in signature order and
// axioms in sequence order.
func FormatSpec(sp *Spec) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "spec %s =\n", sp.Name)
	for _, s := range sp.Signature.Sorts() {
		buf.WriteString(indentString)
		buf.WriteString(FormatSort(s))
		buf.WriteString("\n")
	}
	for _, f := range sp.Signature.Functions() {
		buf.WriteString(indentString)
		buf.WriteString(FormatFnSymbol(f))
		buf.WriteString("\n")
	}
	for _, p := range sp.Signature.Predicates() {
		buf.WriteString(indentString)
		buf.WriteString(FormatPredSymbol(p))
		buf.WriteString("\n")
	}
	for sort, info := range sp.Signature.GeneratedSorts() {
		buf.WriteString(indentString)
		buf.WriteString(formatGenerated(sort, info))
		buf.WriteString("\n")
	}
	for _, ax := range sp.Axioms {
		buf.WriteString(indentString)
		buf.WriteString("• ")
		buf.WriteString(FormatFormula(ax.Formula))
		if ax.Label != "" {
			fmt.Fprintf(&buf, "  %%(%s)%%", ax.Label)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("end\n")
	return buf.String()
}

// FormatSort renders one sort declaration.
func FormatSort(s Sort) string {
	switch s := s.(type) {
	case AtomicSort:
		return fmt.Sprintf("sort %s", s.Name)
	case ProductSort:
		fields := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = fmt.Sprintf("%s : %s", f.Name, f.Sort)
		}
		return fmt.Sprintf("sort %s = (%s)", s.Name, strings.Join(fields, ", "))
	case CoproductSort:
		alts := make([]string, len(s.Alts))
		for i, a := range s.Alts {
			alts[i] = fmt.Sprintf("%s : %s", a.Tag, a.Sort)
		}
		return fmt.Sprintf("sort %s = %s", s.Name, strings.Join(alts, " | "))
	default:
		panic(fmt.Sprintf("unhandled sort declaration: %T", s))
	}
}

// FormatFnSymbol renders a function profile, marking partial functions
// with →?.
func FormatFnSymbol(f FnSymbol) string {
	arrow := "→"
	if f.Totality == Partial {
		arrow = "→?"
	}
	if f.IsConstant() {
		if f.Totality == Partial {
			return fmt.Sprintf("op %s :? %s", f.Name, f.Result)
		}
		return fmt.Sprintf("op %s : %s", f.Name, f.Result)
	}
	return fmt.Sprintf("op %s : %s %s %s", f.Name, formatProfile(f.Params), arrow, f.Result)
}

// FormatPredSymbol renders a predicate profile.
func FormatPredSymbol(p PredSymbol) string {
	if p.Arity() == 0 {
		return fmt.Sprintf("pred %s : ()", p.Name)
	}
	return fmt.Sprintf("pred %s : %s", p.Name, formatProfile(p.Params))
}

func formatProfile(params []Param) string {
	sorts := make([]string, len(params))
	for i, p := range params {
		sorts[i] = string(p.Sort)
	}
	return strings.Join(sorts, " × ")
}

func formatGenerated(sort SortRef, info GeneratedSortInfo) string {
	selectors := make(map[string][]SelectorDecl, len(info.Selectors))
	for _, block := range info.Selectors {
		selectors[block.Constructor] = block.Selectors
	}
	ctors := make([]string, len(info.Constructors))
	for i, ctor := range info.Constructors {
		if sels := selectors[ctor]; len(sels) > 0 {
			parts := make([]string, len(sels))
			for j, sel := range sels {
				parts[j] = fmt.Sprintf("%s : %s", sel.Name, sel.Result)
			}
			ctors[i] = fmt.Sprintf("%s (%s)", ctor, strings.Join(parts, ", "))
		} else {
			ctors[i] = ctor
		}
	}
	return fmt.Sprintf("generated %s ::= %s", sort, strings.Join(ctors, " | "))
}

// FormatTerm renders a term.
func FormatTerm(t Term) string {
	switch t := t.(type) {
	case Var:
		return t.Name
	case FnApp:
		if len(t.Args) == 0 {
			return t.Fn
		}
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = FormatTerm(a)
		}
		return fmt.Sprintf("%s(%s)", t.Fn, strings.Join(args, ", "))
	case FieldAccess:
		return fmt.Sprintf("%s.%s", FormatTerm(t.Base), t.Field)
	default:
		panic(fmt.Sprintf("unhandled term variant: %T", t))
	}
}

// FormatFormula renders a formula, parenthesizing only where precedence
// requires it. Runs of same-kind quantifiers render as one binder list:
// ∀ s : Stack, e : Elem • body.
func FormatFormula(f Formula) string {
	return formatFormula(f, precQuantifier)
}

func formatFormula(f Formula, context int) string {
	var out string
	var level int
	switch f := f.(type) {
	case StrongEquation:
		level = precAtom
		out = fmt.Sprintf("%s = %s", FormatTerm(f.Left), FormatTerm(f.Right))
	case ExistentialEquation:
		level = precAtom
		out = fmt.Sprintf("%s =e= %s", FormatTerm(f.Left), FormatTerm(f.Right))
	case PredApp:
		level = precAtom
		if len(f.Args) == 0 {
			out = f.Pred
		} else {
			args := make([]string, len(f.Args))
			for i, a := range f.Args {
				args[i] = FormatTerm(a)
			}
			out = fmt.Sprintf("%s(%s)", f.Pred, strings.Join(args, ", "))
		}
	case Definedness:
		level = precAtom
		out = fmt.Sprintf("def %s", FormatTerm(f.Of))
	case Negation:
		level = precNot
		out = fmt.Sprintf("¬ %s", formatFormula(f.Body, precNot))
	case Conjunction:
		level = precAnd
		out = fmt.Sprintf("%s ∧ %s", formatFormula(f.Left, precAnd), formatFormula(f.Right, precAnd))
	case Disjunction:
		level = precOr
		out = fmt.Sprintf("%s ∨ %s", formatFormula(f.Left, precOr), formatFormula(f.Right, precOr))
	case Implication:
		level = precImplies
		out = fmt.Sprintf("%s ⇒ %s", formatFormula(f.Antecedent, precAnd), formatFormula(f.Consequent, precImplies))
	case Biconditional:
		level = precIff
		out = fmt.Sprintf("%s ⇔ %s", formatFormula(f.Left, precImplies), formatFormula(f.Right, precImplies))
	case UniversalQuant:
		level = precQuantifier
		binders, body := collectQuantRun(f)
		out = fmt.Sprintf("∀ %s • %s", binders, formatFormula(body, precQuantifier))
	case ExistentialQuant:
		level = precQuantifier
		binders, body := collectQuantRun(f)
		out = fmt.Sprintf("∃ %s • %s", binders, formatFormula(body, precQuantifier))
	default:
		panic(fmt.Sprintf("unhandled formula variant: %T", f))
	}
	if level < context {
		return "(" + out + ")"
	}
	return out
}

// collectQuantRun flattens consecutive same-kind binders into one
// comma-separated binder list.
func collectQuantRun(f Formula) (string, Formula) {
	var binders []string
	switch f := f.(type) {
	case UniversalQuant:
		binders = append(binders, fmt.Sprintf("%s : %s", f.Bound.Name, f.Bound.VarSort))
		body := f.Body
		for {
			next, ok := body.(UniversalQuant)
			if !ok {
				break
			}
			binders = append(binders, fmt.Sprintf("%s : %s", next.Bound.Name, next.Bound.VarSort))
			body = next.Body
		}
		return strings.Join(binders, ", "), body
	case ExistentialQuant:
		binders = append(binders, fmt.Sprintf("%s : %s", f.Bound.Name, f.Bound.VarSort))
		body := f.Body
		for {
			next, ok := body.(ExistentialQuant)
			if !ok {
				break
			}
			binders = append(binders, fmt.Sprintf("%s : %s", next.Bound.Name, next.Bound.VarSort))
			body = next.Body
		}
		return strings.Join(binders, ", "), body
	default:
		panic(fmt.Sprintf("not a quantifier: %T", f))
	}
}
