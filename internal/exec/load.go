package exec

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/registry"
	"github.com/dreamware/coredb/internal/schema"
	"github.com/dreamware/coredb/internal/value"
)

// Format picks a LoadQuery's response shape (spec.md §6 LoadResponse).
type Format uint8

const (
	_ Format = iota
	FormatRows
	FormatKeys
	FormatCount
)

// SortDirection is one sort key's direction.
type SortDirection uint8

const (
	Asc SortDirection = iota
	Desc
)

// SortKey is one (field, direction) pair in a LoadQuery's sort list.
type SortKey struct {
	Field     string
	Direction SortDirection
}

// SearchTerm is one (field, substr) pair in a LoadQuery's search list
// (spec.md §6 LoadQuery, §1 "full-text search beyond substring/equality
// predicates" Non-goal — substring matching on a named field is explicitly
// in scope, unlike ranked or tokenized full-text search).
type SearchTerm struct {
	Field  string
	Substr string
}

// Query is a LoadExecutor request (spec.md §6 LoadQuery).
type Query struct {
	Selector query.Selector
	Filter   *query.Expr
	Sort     []SortKey
	Search   []SearchTerm
	Offset   uint32
	Limit    *uint32
	Format   Format
}

// Row is one materialized, decoded entity plus its save bookkeeping
// (spec.md §6 DataRow).
type Row struct {
	Key        key.DataKey
	Entity     schema.Entity
	CreatedMs  uint64
	ModifiedMs uint64
}

// Result is an executor's output. A Load populates exactly one of Rows,
// Keys, or Count, selected by the originating Query's Format; a Save or
// Patch populates Key, CreatedMs, and ModifiedMs (spec.md §6 SaveResponse).
type Result struct {
	Rows  []Row
	Keys  []key.DataKey
	Count int

	Key        key.DataKey
	CreatedMs  uint64
	ModifiedMs uint64
}

// LoadExecutor implements spec.md §4.3's resolve → plan → materialize →
// deserialize → post-filter → sort → paginate pipeline.
type LoadExecutor struct {
	base
	log *zap.Logger
}

// NewLoadExecutor builds a LoadExecutor. A nil logger defaults to
// zap.NewNop().
func NewLoadExecutor(schemaReg *schema.Registry, stores *registry.StoreRegistry, log *zap.Logger) *LoadExecutor {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoadExecutor{base: base{schemaReg: schemaReg, stores: stores}, log: log}
}

// Load runs q against path's entity and returns a Result shaped by
// q.Format.
func (l *LoadExecutor) Load(path string, q Query) (Result, error) {
	def, err := l.resolveEntity(path)
	if err != nil {
		return Result{}, err
	}

	codec, err := l.schemaReg.Codec(path)
	if err != nil {
		return Result{}, err
	}

	plan := query.BuildPlan(def, q.Selector, q.Filter)
	candidates, err := l.materialize(def, plan)
	if err != nil {
		return Result{}, err
	}

	rows := make([]Row, 0, len(candidates))
	for _, c := range candidates {
		entity, err := codec.Decode(path, c.Env.Bytes)
		if err != nil {
			return Result{}, dberr.Wrap(dberr.KindSerdeFailure, c.Key.String(), err)
		}

		if q.Filter != nil {
			ok, err := query.Eval(*q.Filter, entity.ProjectToValues())
			if err != nil {
				return Result{}, err
			}
			if !ok {
				continue
			}
		}

		if len(q.Search) > 0 {
			ok, err := matchesSearch(entity, q.Search)
			if err != nil {
				return Result{}, err
			}
			if !ok {
				continue
			}
		}

		rows = append(rows, Row{Key: c.Key, Entity: entity, CreatedMs: c.Env.CreatedMs, ModifiedMs: c.Env.ModifiedMs})
	}

	sortRows(rows, q.Sort)
	rows = paginate(rows, q.Offset, q.Limit)

	switch q.Format {
	case FormatKeys:
		keys := make([]key.DataKey, 0, len(rows))
		for _, r := range rows {
			keys = append(keys, r.Key)
		}
		return Result{Keys: keys}, nil
	case FormatCount:
		return Result{Count: len(rows)}, nil
	default:
		return Result{Rows: rows}, nil
	}
}

// matchesSearch applies a LoadQuery's search terms as an implicit AND of
// case-sensitive substring predicates, each scoped to one field (spec.md
// §6 LoadQuery.search). A term naming a non-Text field is a BadFilter
// error rather than a silent non-match, matching the planner's treatment
// of a filter predicate against a field of the wrong kind.
func matchesSearch(e schema.Entity, terms []SearchTerm) (bool, error) {
	fields := e.ProjectToValues()
	for _, term := range terms {
		v, ok := fields[term.Field]
		if !ok || v.Kind() != value.KindText {
			return false, dberr.New(dberr.KindBadFilter, "search term on non-text field "+term.Field)
		}
		if !strings.Contains(v.Text(), term.Substr) {
			return false, nil
		}
	}
	return true, nil
}

// sortRows applies a stable, multi-key sort (spec.md §4.3's ordering
// policy): missing/None field values always sort as less-than present
// ones, regardless of the requested direction.
func sortRows(rows []Row, keys []SortKey) {
	if len(keys) == 0 {
		return
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		af := a.Entity.ProjectToValues()
		bf := b.Entity.ProjectToValues()
		for _, sk := range keys {
			av, aok := af[sk.Field]
			bv, bok := bf[sk.Field]
			c := compareField(av, aok, bv, bok, sk.Direction)
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

// compareField implements spec.md §4.3's ordering policy: a field that is
// absent or None always sorts as less-than a present one, regardless of
// the requested direction.
func compareField(a value.Value, aPresent bool, b value.Value, bPresent bool, dir SortDirection) int {
	aNone := !aPresent || a.IsNone()
	bNone := !bPresent || b.IsNone()
	switch {
	case aNone && bNone:
		return 0
	case aNone:
		return -1
	case bNone:
		return 1
	}

	c := value.Cmp(a, b)
	if dir == Desc {
		c = -c
	}
	return c
}

func paginate(rows []Row, offset uint32, limit *uint32) []Row {
	start := int(offset)
	if start >= len(rows) {
		return nil
	}
	rows = rows[start:]
	if limit != nil && int(*limit) < len(rows) {
		rows = rows[:*limit]
	}
	return rows
}
