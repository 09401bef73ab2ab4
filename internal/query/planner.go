package query

import (
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/schema"
	"github.com/dreamware/coredb/internal/value"
)

// PlanKind discriminates the Planner's closed output set: Keys | Range |
// Index (spec.md §4.3).
type PlanKind uint8

const (
	_ PlanKind = iota
	PlanKeys
	PlanRange
	PlanIndex
)

// IndexPlan names the index chosen to answer a query and the equality
// values pinned against its field chain.
type IndexPlan struct {
	Index  schema.IndexDef
	Values []value.IndexValue
}

// Plan is the Planner's output: QueryPlan = Keys(Key[]) | Range(Key,Key) |
// Index(IndexPlan) (spec.md §4.3).
type Plan struct {
	Kind PlanKind

	Keys []key.DataKey

	RangeStart key.DataKey
	RangeEnd   key.DataKey

	Index IndexPlan
}

// BuildPlan implements the Planner algorithm of spec.md §4.3:
//  1. If the selector alone pins exact keys, use Keys.
//  2. Else look for an index-coverable conjunction: every field of some
//     index appears as an Eq (or In) predicate in a top-level And. Prefer
//     unique indexes, then indexes covering more fields.
//  3. If found, use Index.
//  4. Else fall back to the selector's own Range resolution.
func BuildPlan(def *schema.EntityDef, sel Selector, filter *Expr) Plan {
	resolved := sel.Resolve(def.EntityID)
	if resolved.IsKeys && sel.pinsExactKeys() {
		return Plan{Kind: PlanKeys, Keys: resolved.Keys}
	}

	if filter != nil {
		if plan, ok := planViaIndex(def, *filter); ok {
			return plan
		}
	}

	if resolved.IsKeys {
		return Plan{Kind: PlanKeys, Keys: resolved.Keys}
	}
	return Plan{Kind: PlanRange, RangeStart: resolved.Start, RangeEnd: resolved.End}
}

// planViaIndex looks for a top-level conjunction (or a bare Cmp, treated
// as a one-term conjunction) whose Eq/In predicates cover every field of
// some declared index.
func planViaIndex(def *schema.EntityDef, filter Expr) (Plan, bool) {
	terms := conjunctionTerms(filter)
	if len(terms) == 0 {
		return Plan{}, false
	}

	var best *schema.IndexDef
	var bestValues []value.IndexValue

	for i := range def.Indexes {
		idx := def.Indexes[i]
		values, ok := coverIndex(idx, terms)
		if !ok {
			continue
		}
		if best == nil || indexIsBetter(idx, *best) {
			best = &def.Indexes[i]
			bestValues = values
		}
	}

	if best == nil {
		return Plan{}, false
	}
	return Plan{Kind: PlanIndex, Index: IndexPlan{Index: *best, Values: bestValues}}, true
}

// indexIsBetter prefers unique indexes, then indexes covering more fields.
func indexIsBetter(candidate, current schema.IndexDef) bool {
	if candidate.Unique != current.Unique {
		return candidate.Unique
	}
	return len(candidate.Fields) > len(current.Fields)
}

// conjunctionTerms flattens a top-level And (or a bare Cmp) into its Cmp
// leaves. Any Or/Not at the top level makes the filter non-coverable by a
// single index lookup, so it yields no terms.
func conjunctionTerms(e Expr) []Expr {
	switch e.kind {
	case exprCmp:
		return []Expr{e}
	case exprAnd:
		var out []Expr
		for _, c := range e.children {
			if c.kind != exprCmp {
				return nil
			}
			out = append(out, c)
		}
		return out
	default:
		return nil
	}
}

// coverIndex checks whether terms pins every field of idx with an Eq (or
// single-valued In) predicate, and if so returns the IndexValue chain in
// idx.Fields order.
func coverIndex(idx schema.IndexDef, terms []Expr) ([]value.IndexValue, bool) {
	byField := make(map[string]Expr, len(terms))
	for _, t := range terms {
		byField[t.Field()] = t
	}

	values := make([]value.IndexValue, 0, len(idx.Fields))
	for _, field := range idx.Fields {
		term, ok := byField[field]
		if !ok {
			return nil, false
		}
		switch term.Op() {
		case OpEq:
			values = append(values, value.FromValue(term.Operand()))
		case OpIn:
			if len(term.Operands()) != 1 {
				// Multi-valued In can't pin a single index key; the
				// executor still needs to fan out or post-filter.
				return nil, false
			}
			values = append(values, value.FromValue(term.Operands()[0]))
		default:
			return nil, false
		}
	}
	return values, true
}
