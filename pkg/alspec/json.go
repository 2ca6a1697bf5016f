package alspec

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// The interchange representation is a tree of tagged records: every node
// is an object whose "type" field is exactly its variant name, plus that
// variant's own fields. Ordered fields (arguments, axioms, profiles,
// product components, signature tables) encode as arrays, so decode
// reconstructs them in the exact order they were declared.
//
// Decoding runs every value back through the checked constructors, so
// decode(encode(N)) is structurally equal to N for every validly
// constructed node, and an ill-sorted document is rejected with the same
// typed errors as direct construction.

// MarshalSpec encodes a specification as indented JSON.
func MarshalSpec(sp *Spec) ([]byte, error) {
	return json.MarshalIndent(EncodeSpec(sp), "", "  ")
}

// UnmarshalSpec decodes a specification from JSON.
func UnmarshalSpec(data []byte) (*Spec, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "parsing spec document")
	}
	return DecodeSpec(v)
}

// EncodeSort encodes a sort declaration.
func EncodeSort(s Sort) map[string]any {
	switch s := s.(type) {
	case AtomicSort:
		return map[string]any{"type": "Atomic", "name": string(s.Name)}
	case ProductSort:
		fields := make([]any, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = map[string]any{"name": f.Name, "sort": string(f.Sort)}
		}
		return map[string]any{"type": "Product", "name": string(s.Name), "fields": fields}
	case CoproductSort:
		variants := make([]any, len(s.Alts))
		for i, a := range s.Alts {
			variants[i] = map[string]any{"tag": a.Tag, "sort": string(a.Sort)}
		}
		return map[string]any{"type": "Coproduct", "name": string(s.Name), "variants": variants}
	default:
		panic(fmt.Sprintf("unhandled sort declaration: %T", s))
	}
}

// DecodeSort decodes a sort declaration. References inside product and
// coproduct sorts are resolved later, when the sort enters a signature.
func DecodeSort(v any) (Sort, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "Atomic":
		name, err := objString(typ, obj, "name")
		if err != nil {
			return nil, err
		}
		return AtomicSort{Name: SortRef(name)}, nil
	case "Product":
		name, err := objString(typ, obj, "name")
		if err != nil {
			return nil, err
		}
		entries, err := objList(typ, obj, "fields")
		if err != nil {
			return nil, err
		}
		fields := make([]ProductField, len(entries))
		for i, e := range entries {
			fieldName, fieldSort, err := decodeNameSort(typ, "fields", e)
			if err != nil {
				return nil, err
			}
			fields[i] = ProductField{Name: fieldName, Sort: fieldSort}
		}
		s, err := NewProductSort(SortRef(name), nilIfEmpty(fields)...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "Coproduct":
		name, err := objString(typ, obj, "name")
		if err != nil {
			return nil, err
		}
		entries, err := objList(typ, obj, "variants")
		if err != nil {
			return nil, err
		}
		alts := make([]CoproductAlt, len(entries))
		for i, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				return nil, MalformedNodeError{Type: typ, Field: "variants", Reason: "entry is not an object"}
			}
			tag, ok := entry["tag"].(string)
			if !ok {
				return nil, MalformedNodeError{Type: typ, Field: "variants", Reason: "entry is missing a tag"}
			}
			altSort, ok := entry["sort"].(string)
			if !ok {
				return nil, MalformedNodeError{Type: typ, Field: "variants", Reason: "entry is missing a sort"}
			}
			alts[i] = CoproductAlt{Tag: tag, Sort: SortRef(altSort)}
		}
		s, err := NewCoproductSort(SortRef(name), nilIfEmpty(alts)...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, UnknownNodeTypeError{Type: typ}
	}
}

// EncodeFnSymbol encodes a function symbol.
func EncodeFnSymbol(f FnSymbol) map[string]any {
	return map[string]any{
		"type":     "FunctionSymbol",
		"name":     f.Name,
		"params":   encodeParams(f.Params),
		"result":   string(f.Result),
		"totality": string(f.Totality),
	}
}

// DecodeFnSymbol decodes a function symbol.
func DecodeFnSymbol(v any) (FnSymbol, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return FnSymbol{}, err
	}
	if typ != "FunctionSymbol" {
		return FnSymbol{}, UnknownNodeTypeError{Type: typ}
	}
	name, err := objString(typ, obj, "name")
	if err != nil {
		return FnSymbol{}, err
	}
	params, err := decodeParams(typ, obj)
	if err != nil {
		return FnSymbol{}, err
	}
	result, err := objString(typ, obj, "result")
	if err != nil {
		return FnSymbol{}, err
	}
	totality, err := objString(typ, obj, "totality")
	if err != nil {
		return FnSymbol{}, err
	}
	if totality != string(Total) && totality != string(Partial) {
		return FnSymbol{}, MalformedNodeError{Type: typ, Field: "totality", Reason: fmt.Sprintf("unrecognized value %q", totality)}
	}
	return FnSymbol{Name: name, Params: params, Result: SortRef(result), Totality: Totality(totality)}, nil
}

// EncodePredSymbol encodes a predicate symbol.
func EncodePredSymbol(p PredSymbol) map[string]any {
	return map[string]any{
		"type":   "PredicateSymbol",
		"name":   p.Name,
		"params": encodeParams(p.Params),
	}
}

// DecodePredSymbol decodes a predicate symbol.
func DecodePredSymbol(v any) (PredSymbol, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return PredSymbol{}, err
	}
	if typ != "PredicateSymbol" {
		return PredSymbol{}, UnknownNodeTypeError{Type: typ}
	}
	name, err := objString(typ, obj, "name")
	if err != nil {
		return PredSymbol{}, err
	}
	params, err := decodeParams(typ, obj)
	if err != nil {
		return PredSymbol{}, err
	}
	return PredSymbol{Name: name, Params: params}, nil
}

// EncodeGeneratedSort encodes one generated-sort declaration.
func EncodeGeneratedSort(sort SortRef, info GeneratedSortInfo) map[string]any {
	ctors := make([]any, len(info.Constructors))
	for i, c := range info.Constructors {
		ctors[i] = c
	}
	selectors := make([]any, len(info.Selectors))
	for i, block := range info.Selectors {
		sels := make([]any, len(block.Selectors))
		for j, sel := range block.Selectors {
			sels[j] = map[string]any{"name": sel.Name, "result": string(sel.Result)}
		}
		selectors[i] = map[string]any{"constructor": block.Constructor, "selectors": sels}
	}
	return map[string]any{
		"type":         "GeneratedSortInfo",
		"sort":         string(sort),
		"constructors": ctors,
		"selectors":    selectors,
	}
}

// DecodeGeneratedSort decodes one generated-sort declaration.
func DecodeGeneratedSort(v any) (SortRef, GeneratedSortInfo, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return "", GeneratedSortInfo{}, err
	}
	if typ != "GeneratedSortInfo" {
		return "", GeneratedSortInfo{}, UnknownNodeTypeError{Type: typ}
	}
	sort, err := objString(typ, obj, "sort")
	if err != nil {
		return "", GeneratedSortInfo{}, err
	}
	ctorEntries, err := objList(typ, obj, "constructors")
	if err != nil {
		return "", GeneratedSortInfo{}, err
	}
	ctors := make([]string, len(ctorEntries))
	for i, e := range ctorEntries {
		c, ok := e.(string)
		if !ok {
			return "", GeneratedSortInfo{}, MalformedNodeError{Type: typ, Field: "constructors", Reason: "entry is not a string"}
		}
		ctors[i] = c
	}
	selEntries, err := objList(typ, obj, "selectors")
	if err != nil {
		return "", GeneratedSortInfo{}, err
	}
	blocks := make([]ConstructorSelectors, len(selEntries))
	for i, e := range selEntries {
		entry, ok := e.(map[string]any)
		if !ok {
			return "", GeneratedSortInfo{}, MalformedNodeError{Type: typ, Field: "selectors", Reason: "entry is not an object"}
		}
		ctor, ok := entry["constructor"].(string)
		if !ok {
			return "", GeneratedSortInfo{}, MalformedNodeError{Type: typ, Field: "selectors", Reason: "entry is missing a constructor"}
		}
		selList, ok := entry["selectors"].([]any)
		if !ok {
			return "", GeneratedSortInfo{}, MalformedNodeError{Type: typ, Field: "selectors", Reason: "entry is missing a selector list"}
		}
		sels := make([]SelectorDecl, len(selList))
		for j, se := range selList {
			selName, selResult, err := decodeNameResult(typ, se)
			if err != nil {
				return "", GeneratedSortInfo{}, err
			}
			sels[j] = SelectorDecl{Name: selName, Result: selResult}
		}
		blocks[i] = ConstructorSelectors{Constructor: ctor, Selectors: nilIfEmpty(sels)}
	}
	return SortRef(sort), GeneratedSortInfo{Constructors: nilIfEmpty(ctors), Selectors: nilIfEmpty(blocks)}, nil
}

// EncodeSignature encodes a signature. Each table encodes as an array in
// declaration order.
func EncodeSignature(sig *Signature) map[string]any {
	sorts := []any{}
	for _, s := range sig.Sorts() {
		sorts = append(sorts, EncodeSort(s))
	}
	functions := []any{}
	for _, f := range sig.Functions() {
		functions = append(functions, EncodeFnSymbol(f))
	}
	predicates := []any{}
	for _, p := range sig.Predicates() {
		predicates = append(predicates, EncodePredSymbol(p))
	}
	generated := []any{}
	for sort, info := range sig.GeneratedSorts() {
		generated = append(generated, EncodeGeneratedSort(sort, info))
	}
	return map[string]any{
		"type":       "Signature",
		"sorts":      sorts,
		"functions":  functions,
		"predicates": predicates,
		"generated":  generated,
	}
}

// DecodeSignature decodes a signature, replaying every declaration
// through the With* operations so all well-formedness invariants are
// re-established.
func DecodeSignature(v any) (*Signature, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return nil, err
	}
	if typ != "Signature" {
		return nil, UnknownNodeTypeError{Type: typ}
	}
	sig := NewSignature()
	sorts, err := objList(typ, obj, "sorts")
	if err != nil {
		return nil, err
	}
	for i, e := range sorts {
		s, err := DecodeSort(e)
		if err != nil {
			return nil, errors.Wrapf(err, "sorts[%d]", i)
		}
		if sig, err = sig.WithSort(s); err != nil {
			return nil, errors.Wrapf(err, "sorts[%d]", i)
		}
	}
	functions, err := objList(typ, obj, "functions")
	if err != nil {
		return nil, err
	}
	for i, e := range functions {
		f, err := DecodeFnSymbol(e)
		if err != nil {
			return nil, errors.Wrapf(err, "functions[%d]", i)
		}
		if sig, err = sig.WithFunction(f); err != nil {
			return nil, errors.Wrapf(err, "functions[%d]", i)
		}
	}
	predicates, err := objList(typ, obj, "predicates")
	if err != nil {
		return nil, err
	}
	for i, e := range predicates {
		p, err := DecodePredSymbol(e)
		if err != nil {
			return nil, errors.Wrapf(err, "predicates[%d]", i)
		}
		if sig, err = sig.WithPredicate(p); err != nil {
			return nil, errors.Wrapf(err, "predicates[%d]", i)
		}
	}
	generated, err := objList(typ, obj, "generated")
	if err != nil {
		return nil, err
	}
	for i, e := range generated {
		sort, info, err := DecodeGeneratedSort(e)
		if err != nil {
			return nil, errors.Wrapf(err, "generated[%d]", i)
		}
		if sig, err = sig.WithGeneratedSort(sort, info); err != nil {
			return nil, errors.Wrapf(err, "generated[%d]", i)
		}
	}
	return sig, nil
}

// EncodeTerm encodes a term.
func EncodeTerm(t Term) map[string]any {
	switch t := t.(type) {
	case Var:
		return map[string]any{"type": "Variable", "name": t.Name, "sort": string(t.VarSort)}
	case FnApp:
		args := make([]any, len(t.Args))
		for i, a := range t.Args {
			args[i] = EncodeTerm(a)
		}
		return map[string]any{"type": "Application", "function": t.Fn, "args": args}
	case FieldAccess:
		return map[string]any{"type": "FieldAccess", "base": EncodeTerm(t.Base), "field": t.Field}
	default:
		panic(fmt.Sprintf("unhandled term variant: %T", t))
	}
}

// DecodeTerm decodes a term against a signature, re-resolving every
// application and field access so the reconstructed term carries the
// same sorts the original did.
func DecodeTerm(sig *Signature, v any) (Term, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "Variable":
		name, err := objString(typ, obj, "name")
		if err != nil {
			return nil, err
		}
		sort, err := objString(typ, obj, "sort")
		if err != nil {
			return nil, err
		}
		t, err := NewVar(sig, name, SortRef(sort))
		if err != nil {
			return nil, err
		}
		return t, nil
	case "Application":
		fn, err := objString(typ, obj, "function")
		if err != nil {
			return nil, err
		}
		argEntries, err := objList(typ, obj, "args")
		if err != nil {
			return nil, err
		}
		args := make([]Term, len(argEntries))
		for i, e := range argEntries {
			arg, err := DecodeTerm(sig, e)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		t, err := NewFnApp(sig, fn, nilIfEmpty(args)...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "FieldAccess":
		baseEntry, err := objField(typ, obj, "base")
		if err != nil {
			return nil, err
		}
		base, err := DecodeTerm(sig, baseEntry)
		if err != nil {
			return nil, err
		}
		field, err := objString(typ, obj, "field")
		if err != nil {
			return nil, err
		}
		t, err := NewFieldAccess(sig, base, field)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, UnknownNodeTypeError{Type: typ}
	}
}

// EncodeFormula encodes a formula.
func EncodeFormula(f Formula) map[string]any {
	switch f := f.(type) {
	case StrongEquation:
		return map[string]any{"type": "StrongEquation", "left": EncodeTerm(f.Left), "right": EncodeTerm(f.Right)}
	case ExistentialEquation:
		return map[string]any{"type": "ExistentialEquation", "left": EncodeTerm(f.Left), "right": EncodeTerm(f.Right)}
	case PredApp:
		args := make([]any, len(f.Args))
		for i, a := range f.Args {
			args[i] = EncodeTerm(a)
		}
		return map[string]any{"type": "PredicateApplication", "predicate": f.Pred, "args": args}
	case Negation:
		return map[string]any{"type": "Negation", "body": EncodeFormula(f.Body)}
	case Conjunction:
		return map[string]any{"type": "Conjunction", "left": EncodeFormula(f.Left), "right": EncodeFormula(f.Right)}
	case Disjunction:
		return map[string]any{"type": "Disjunction", "left": EncodeFormula(f.Left), "right": EncodeFormula(f.Right)}
	case Implication:
		return map[string]any{"type": "Implication", "antecedent": EncodeFormula(f.Antecedent), "consequent": EncodeFormula(f.Consequent)}
	case Biconditional:
		return map[string]any{"type": "Biconditional", "left": EncodeFormula(f.Left), "right": EncodeFormula(f.Right)}
	case UniversalQuant:
		return map[string]any{
			"type":       "UniversalQuantifier",
			"bound_name": f.Bound.Name,
			"bound_sort": string(f.Bound.VarSort),
			"body":       EncodeFormula(f.Body),
		}
	case ExistentialQuant:
		return map[string]any{
			"type":       "ExistentialQuantifier",
			"bound_name": f.Bound.Name,
			"bound_sort": string(f.Bound.VarSort),
			"body":       EncodeFormula(f.Body),
		}
	case Definedness:
		return map[string]any{"type": "Definedness", "term": EncodeTerm(f.Of)}
	default:
		panic(fmt.Sprintf("unhandled formula variant: %T", f))
	}
}

// DecodeFormula decodes a formula against a signature, revalidating
// every equation, application, and binder.
func DecodeFormula(sig *Signature, v any) (Formula, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "StrongEquation":
		left, right, err := decodeEquationSides(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		eq, err := NewStrongEquation(left, right)
		if err != nil {
			return nil, err
		}
		return eq, nil
	case "ExistentialEquation":
		left, right, err := decodeEquationSides(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		eq, err := NewExistentialEquation(left, right)
		if err != nil {
			return nil, err
		}
		return eq, nil
	case "PredicateApplication":
		pred, err := objString(typ, obj, "predicate")
		if err != nil {
			return nil, err
		}
		argEntries, err := objList(typ, obj, "args")
		if err != nil {
			return nil, err
		}
		args := make([]Term, len(argEntries))
		for i, e := range argEntries {
			arg, err := DecodeTerm(sig, e)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		pa, err := NewPredApp(sig, pred, nilIfEmpty(args)...)
		if err != nil {
			return nil, err
		}
		return pa, nil
	case "Negation":
		body, err := decodeSubFormula(sig, typ, obj, "body")
		if err != nil {
			return nil, err
		}
		return Negation{Body: body}, nil
	case "Conjunction":
		left, right, err := decodeBinarySides(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		return Conjunction{Left: left, Right: right}, nil
	case "Disjunction":
		left, right, err := decodeBinarySides(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		return Disjunction{Left: left, Right: right}, nil
	case "Implication":
		antecedent, err := decodeSubFormula(sig, typ, obj, "antecedent")
		if err != nil {
			return nil, err
		}
		consequent, err := decodeSubFormula(sig, typ, obj, "consequent")
		if err != nil {
			return nil, err
		}
		return Implication{Antecedent: antecedent, Consequent: consequent}, nil
	case "Biconditional":
		left, right, err := decodeBinarySides(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		return Biconditional{Left: left, Right: right}, nil
	case "UniversalQuantifier":
		name, sort, body, err := decodeQuantifier(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		q, err := NewUniversalQuant(sig, name, sort, body)
		if err != nil {
			return nil, err
		}
		return q, nil
	case "ExistentialQuantifier":
		name, sort, body, err := decodeQuantifier(sig, typ, obj)
		if err != nil {
			return nil, err
		}
		q, err := NewExistentialQuant(sig, name, sort, body)
		if err != nil {
			return nil, err
		}
		return q, nil
	case "Definedness":
		entry, err := objField(typ, obj, "term")
		if err != nil {
			return nil, err
		}
		t, err := DecodeTerm(sig, entry)
		if err != nil {
			return nil, err
		}
		return Definedness{Of: t}, nil
	default:
		return nil, UnknownNodeTypeError{Type: typ}
	}
}

// EncodeSpec encodes a whole specification.
func EncodeSpec(sp *Spec) map[string]any {
	axioms := make([]any, len(sp.Axioms))
	for i, ax := range sp.Axioms {
		axioms[i] = map[string]any{"label": ax.Label, "formula": EncodeFormula(ax.Formula)}
	}
	return map[string]any{
		"type":      "Specification",
		"name":      sp.Name,
		"signature": EncodeSignature(sp.Signature),
		"axioms":    axioms,
	}
}

// DecodeSpec decodes a whole specification: signature first, then every
// axiom against it, then the closedness validation NewSpec performs.
func DecodeSpec(v any) (*Spec, error) {
	typ, obj, err := nodeType(v)
	if err != nil {
		return nil, err
	}
	if typ != "Specification" {
		return nil, UnknownNodeTypeError{Type: typ}
	}
	name, err := objString(typ, obj, "name")
	if err != nil {
		return nil, err
	}
	sigEntry, err := objField(typ, obj, "signature")
	if err != nil {
		return nil, err
	}
	sig, err := DecodeSignature(sigEntry)
	if err != nil {
		return nil, errors.Wrap(err, "signature")
	}
	axiomEntries, err := objList(typ, obj, "axioms")
	if err != nil {
		return nil, err
	}
	axioms := make([]Axiom, len(axiomEntries))
	for i, e := range axiomEntries {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, MalformedNodeError{Type: typ, Field: "axioms", Reason: "entry is not an object"}
		}
		label, ok := entry["label"].(string)
		if !ok {
			return nil, MalformedNodeError{Type: typ, Field: "axioms", Reason: "entry is missing a label"}
		}
		formulaEntry, ok := entry["formula"]
		if !ok {
			return nil, MalformedNodeError{Type: typ, Field: "axioms", Reason: "entry is missing a formula"}
		}
		formula, err := DecodeFormula(sig, formulaEntry)
		if err != nil {
			return nil, errors.Wrapf(err, "axioms[%d]", i)
		}
		axioms[i] = Axiom{Label: label, Formula: formula}
	}
	return NewSpec(name, sig, nilIfEmpty(axioms)...)
}

// decode plumbing

// nilIfEmpty keeps decoded empty sequences nil, so decoded values compare
// equal to ones built directly through the constructors.
func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func nodeType(v any) (string, map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", nil, MalformedNodeError{Reason: "not an object"}
	}
	typ, ok := obj["type"].(string)
	if !ok {
		return "", nil, MalformedNodeError{Field: "type", Reason: "missing or not a string"}
	}
	return typ, obj, nil
}

func objString(typ string, obj map[string]any, field string) (string, error) {
	s, ok := obj[field].(string)
	if !ok {
		return "", MalformedNodeError{Type: typ, Field: field, Reason: "missing or not a string"}
	}
	return s, nil
}

func objList(typ string, obj map[string]any, field string) ([]any, error) {
	l, ok := obj[field].([]any)
	if !ok {
		return nil, MalformedNodeError{Type: typ, Field: field, Reason: "missing or not an array"}
	}
	return l, nil
}

func objField(typ string, obj map[string]any, field string) (any, error) {
	v, ok := obj[field]
	if !ok {
		return nil, MalformedNodeError{Type: typ, Field: field, Reason: "missing"}
	}
	return v, nil
}

func encodeParams(params []Param) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = map[string]any{"name": p.Name, "sort": string(p.Sort)}
	}
	return out
}

func decodeParams(typ string, obj map[string]any) ([]Param, error) {
	entries, err := objList(typ, obj, "params")
	if err != nil {
		return nil, err
	}
	params := make([]Param, len(entries))
	for i, e := range entries {
		name, sort, err := decodeNameSort(typ, "params", e)
		if err != nil {
			return nil, err
		}
		params[i] = Param{Name: name, Sort: sort}
	}
	return nilIfEmpty(params), nil
}

func decodeNameSort(typ, field string, v any) (string, SortRef, error) {
	entry, ok := v.(map[string]any)
	if !ok {
		return "", "", MalformedNodeError{Type: typ, Field: field, Reason: "entry is not an object"}
	}
	name, ok := entry["name"].(string)
	if !ok {
		return "", "", MalformedNodeError{Type: typ, Field: field, Reason: "entry is missing a name"}
	}
	sort, ok := entry["sort"].(string)
	if !ok {
		return "", "", MalformedNodeError{Type: typ, Field: field, Reason: "entry is missing a sort"}
	}
	return name, SortRef(sort), nil
}

func decodeNameResult(typ string, v any) (string, SortRef, error) {
	entry, ok := v.(map[string]any)
	if !ok {
		return "", "", MalformedNodeError{Type: typ, Field: "selectors", Reason: "selector is not an object"}
	}
	name, ok := entry["name"].(string)
	if !ok {
		return "", "", MalformedNodeError{Type: typ, Field: "selectors", Reason: "selector is missing a name"}
	}
	result, ok := entry["result"].(string)
	if !ok {
		return "", "", MalformedNodeError{Type: typ, Field: "selectors", Reason: "selector is missing a result"}
	}
	return name, SortRef(result), nil
}

func decodeEquationSides(sig *Signature, typ string, obj map[string]any) (Term, Term, error) {
	leftEntry, err := objField(typ, obj, "left")
	if err != nil {
		return nil, nil, err
	}
	left, err := DecodeTerm(sig, leftEntry)
	if err != nil {
		return nil, nil, err
	}
	rightEntry, err := objField(typ, obj, "right")
	if err != nil {
		return nil, nil, err
	}
	right, err := DecodeTerm(sig, rightEntry)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func decodeBinarySides(sig *Signature, typ string, obj map[string]any) (Formula, Formula, error) {
	left, err := decodeSubFormula(sig, typ, obj, "left")
	if err != nil {
		return nil, nil, err
	}
	right, err := decodeSubFormula(sig, typ, obj, "right")
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func decodeSubFormula(sig *Signature, typ string, obj map[string]any, field string) (Formula, error) {
	entry, err := objField(typ, obj, field)
	if err != nil {
		return nil, err
	}
	return DecodeFormula(sig, entry)
}

func decodeQuantifier(sig *Signature, typ string, obj map[string]any) (string, SortRef, Formula, error) {
	name, err := objString(typ, obj, "bound_name")
	if err != nil {
		return "", "", nil, err
	}
	sort, err := objString(typ, obj, "bound_sort")
	if err != nil {
		return "", "", nil, err
	}
	body, err := decodeSubFormula(sig, typ, obj, "body")
	if err != nil {
		return "", "", nil, err
	}
	return name, SortRef(sort), body, nil
}
