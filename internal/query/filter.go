package query

import (
	"fmt"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/value"
)

// Op is a FilterExpr comparison operator (spec.md §4.3).
type Op uint8

const (
	_ Op = iota
	OpEq
	OpNe
	OpLt
	OpLte
	OpGt
	OpGte
	OpIn
	OpNotIn
	OpContains
	OpAnyIn
	OpAllIn
	OpIsNone
	OpIsSome
)

type exprKind uint8

const (
	_ exprKind = iota
	exprAnd
	exprOr
	exprNot
	exprCmp
)

// Expr is the FilterExpr algebraic tree: And(es) | Or(es) | Not(e) |
// Cmp(field, op, Value). It is evaluated against an entity's projected
// field map by Eval.
type Expr struct {
	kind     exprKind
	children []Expr
	field    string
	op       Op
	operand  value.Value
	operands []value.Value
}

// And builds a conjunction. And() with no children is true (spec.md §4.3).
func And(es ...Expr) Expr { return Expr{kind: exprAnd, children: es} }

// Or builds a disjunction. Or() with no children is false (spec.md §4.3).
func Or(es ...Expr) Expr { return Expr{kind: exprOr, children: es} }

// Not negates e.
func Not(e Expr) Expr { return Expr{kind: exprNot, children: []Expr{e}} }

// Cmp compares field's projected value to operand using op. Only
// single-operand ops (Eq, Ne, Lt, Lte, Gt, Gte, Contains) are valid here;
// use CmpMany for In/NotIn/AnyIn/AllIn and CmpPresence for IsNone/IsSome.
func Cmp(field string, op Op, operand value.Value) Expr {
	return Expr{kind: exprCmp, field: field, op: op, operand: operand}
}

// CmpMany builds an In/NotIn/AnyIn/AllIn predicate against a candidate
// set of operands.
func CmpMany(field string, op Op, operands []value.Value) Expr {
	return Expr{kind: exprCmp, field: field, op: op, operands: operands}
}

// CmpPresence builds an IsNone/IsSome predicate, which needs no operand.
func CmpPresence(field string, op Op) Expr {
	return Expr{kind: exprCmp, field: field, op: op}
}

// Kind exposes which node of the tree this Expr is, for the Planner's
// index-coverage analysis.
func (e Expr) Kind() string {
	switch e.kind {
	case exprAnd:
		return "and"
	case exprOr:
		return "or"
	case exprNot:
		return "not"
	case exprCmp:
		return "cmp"
	default:
		return "unknown"
	}
}

// Children returns e's subexpressions (And/Or/Not); empty for Cmp.
func (e Expr) Children() []Expr { return e.children }

// Field returns the field name a Cmp node compares; empty for non-Cmp.
func (e Expr) Field() string { return e.field }

// Op returns the operator a Cmp node applies.
func (e Expr) Op() Op { return e.op }

// Operand returns a single-operand Cmp node's comparison value.
func (e Expr) Operand() value.Value { return e.operand }

// Operands returns a multi-operand Cmp node's candidate set.
func (e Expr) Operands() []value.Value { return e.operands }

// Eval evaluates e against fields, the projection of one entity's
// searchable/sortable columns to Value (spec.md §4.3).
func Eval(e Expr, fields map[string]value.Value) (bool, error) {
	switch e.kind {
	case exprAnd:
		for _, c := range e.children {
			ok, err := Eval(c, fields)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case exprOr:
		for _, c := range e.children {
			ok, err := Eval(c, fields)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case exprNot:
		ok, err := Eval(e.children[0], fields)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case exprCmp:
		return evalCmp(e, fields)
	default:
		return false, dberr.New(dberr.KindBadFilter, "unknown expression node")
	}
}

func evalCmp(e Expr, fields map[string]value.Value) (bool, error) {
	fv, present := fields[e.field]

	switch e.op {
	case OpIsNone:
		return !present || fv.IsNone(), nil
	case OpIsSome:
		return present && !fv.IsNone(), nil
	}

	if !present {
		return false, dberr.New(dberr.KindBadFilter, fmt.Sprintf("field %q not present", e.field))
	}

	switch e.op {
	case OpEq:
		return value.Cmp(fv, e.operand) == 0, nil
	case OpNe:
		return value.Cmp(fv, e.operand) != 0, nil
	case OpLt:
		return value.Cmp(fv, e.operand) < 0, nil
	case OpLte:
		return value.Cmp(fv, e.operand) <= 0, nil
	case OpGt:
		return value.Cmp(fv, e.operand) > 0, nil
	case OpGte:
		return value.Cmp(fv, e.operand) >= 0, nil
	case OpIn:
		return containsValue(e.operands, fv), nil
	case OpNotIn:
		return !containsValue(e.operands, fv), nil
	case OpContains:
		return listContains(fv, e.operand)
	case OpAnyIn:
		return listAnyIn(fv, e.operands)
	case OpAllIn:
		return listAllIn(fv, e.operands)
	default:
		return false, dberr.New(dberr.KindBadFilter, fmt.Sprintf("unsupported operator on field %q", e.field))
	}
}

func containsValue(haystack []value.Value, v value.Value) bool {
	for _, h := range haystack {
		if value.Cmp(h, v) == 0 {
			return true
		}
	}
	return false
}

func listContains(list value.Value, v value.Value) (bool, error) {
	if list.Kind() != value.KindList {
		return false, dberr.New(dberr.KindBadFilter, "Contains applied to a non-List field")
	}
	return containsValue(list.List(), v), nil
}

func listAnyIn(list value.Value, candidates []value.Value) (bool, error) {
	if list.Kind() != value.KindList {
		return false, dberr.New(dberr.KindBadFilter, "AnyIn applied to a non-List field")
	}
	for _, elem := range list.List() {
		if containsValue(candidates, elem) {
			return true, nil
		}
	}
	return false, nil
}

func listAllIn(list value.Value, candidates []value.Value) (bool, error) {
	if list.Kind() != value.KindList {
		return false, dberr.New(dberr.KindBadFilter, "AllIn applied to a non-List field")
	}
	for _, elem := range list.List() {
		if !containsValue(candidates, elem) {
			return false, nil
		}
	}
	return true, nil
}
