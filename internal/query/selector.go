package query

import (
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/value"
)

// SelectorKind discriminates the closed set of ways a caller can name a
// candidate set of rows before filtering (spec.md §4.3).
type SelectorKind uint8

const (
	_ SelectorKind = iota
	SelectorAll
	SelectorOnly
	SelectorOne
	SelectorMany
	SelectorPrefix
	SelectorRange
)

// Selector is the closed sum spec.md §4.3 names: All | Only | One(Key) |
// Many(Key[]) | Prefix(Key) | Range(Key, Key).
type Selector struct {
	kind       SelectorKind
	one        key.Key
	many       []key.Key
	prefix     key.Key
	rangeStart key.Key
	rangeEnd   key.Key
}

// All selects every row of an entity (a full scan).
func All() Selector { return Selector{kind: SelectorAll} }

// Only selects the single row of an entity with no primary-key fields.
func Only() Selector { return Selector{kind: SelectorOnly} }

// One selects the row at exactly k.
func One(k key.Key) Selector { return Selector{kind: SelectorOne, one: k} }

// Many selects the rows at exactly the given keys.
func Many(ks []key.Key) Selector { return Selector{kind: SelectorMany, many: ks} }

// Prefix selects every row whose key starts with p.
func Prefix(p key.Key) Selector { return Selector{kind: SelectorPrefix, prefix: p} }

// Range selects every row with key in [start, end], inclusive.
func Range(start, end key.Key) Selector {
	return Selector{kind: SelectorRange, rangeStart: start, rangeEnd: end}
}

// Kind reports which variant of the closed set this Selector holds.
func (s Selector) Kind() SelectorKind { return s.kind }

// Resolved is the selector resolver's output: either a pinned list of
// DataKeys (for Only/One/Many, spec.md §4.3) or a bounded,
// inclusive-both-ends DataKey range (for All/Prefix/Range).
type Resolved struct {
	IsKeys bool
	Keys   []key.DataKey

	Start key.DataKey
	End   key.DataKey
}

// Resolve expands s against entityID's data-key layout, per spec.md §4.3's
// selector resolution rules.
func (s Selector) Resolve(entityID uint64) Resolved {
	switch s.kind {
	case SelectorAll:
		prefix := key.NewDataKey(entityID, key.New())
		return Resolved{Start: prefix, End: prefix.WithLastMax()}
	case SelectorOnly:
		dk := key.NewDataKey(entityID, key.New())
		return Resolved{IsKeys: true, Keys: []key.DataKey{dk}}
	case SelectorOne:
		dk := key.NewDataKey(entityID, s.one)
		return Resolved{IsKeys: true, Keys: []key.DataKey{dk}}
	case SelectorMany:
		dks := make([]key.DataKey, 0, len(s.many))
		for _, k := range s.many {
			dks = append(dks, key.NewDataKey(entityID, k))
		}
		return Resolved{IsKeys: true, Keys: dks}
	case SelectorPrefix:
		start := key.NewDataKey(entityID, s.prefix)
		bound := append(append([]value.IndexValue{}, s.prefix.Parts()...), value.UniversalMax())
		return Resolved{Start: start, End: key.NewDataKey(entityID, key.New(bound...))}
	case SelectorRange:
		start := key.NewDataKey(entityID, s.rangeStart)
		end := key.NewDataKey(entityID, s.rangeEnd)
		return Resolved{Start: start, End: end}
	default:
		prefix := key.NewDataKey(entityID, key.New())
		return Resolved{Start: prefix, End: prefix.WithLastMax()}
	}
}

// pinsExactKeys reports whether this selector, alone, already pins exactly one
// key's worth of equality constraints per field — used by the Planner to
// decide whether a FilterExpr even needs consulting (spec.md §4.3 step 1).
func (s Selector) pinsExactKeys() bool {
	switch s.kind {
	case SelectorOnly, SelectorOne, SelectorMany:
		return true
	default:
		return false
	}
}
