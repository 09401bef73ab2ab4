package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/schema"
	"github.com/dreamware/coredb/internal/value"
)

func TestSelectorResolveOne(t *testing.T) {
	k := key.New(value.FromValue(value.NewInt(5)))
	resolved := One(k).Resolve(7)
	require.True(t, resolved.IsKeys)
	require.Len(t, resolved.Keys, 1)
	assert.Equal(t, uint64(7), resolved.Keys[0].EntityID)
}

func TestSelectorResolvePrefix(t *testing.T) {
	k := key.New(value.FromValue(value.NewInt(5)))
	resolved := Prefix(k).Resolve(7)
	assert.False(t, resolved.IsKeys)
	assert.Equal(t, 0, key.CmpDataKey(resolved.Start, key.NewDataKey(7, k)))
}

func TestFilterEvalAndOr(t *testing.T) {
	fields := map[string]value.Value{
		"level": value.NewInt(3),
		"name":  value.NewText("bob"),
	}

	e := And(
		Cmp("level", OpGte, value.NewInt(2)),
		Cmp("name", OpEq, value.NewText("bob")),
	)
	ok, err := Eval(e, fields)
	require.NoError(t, err)
	assert.True(t, ok)

	e2 := Or(
		Cmp("level", OpGt, value.NewInt(100)),
		Cmp("name", OpEq, value.NewText("bob")),
	)
	ok, err = Eval(e2, fields)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFilterEvalNot(t *testing.T) {
	fields := map[string]value.Value{"level": value.NewInt(1)}
	e := Not(Cmp("level", OpEq, value.NewInt(1)))
	ok, err := Eval(e, fields)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilterEvalMissingFieldIsBadFilter(t *testing.T) {
	_, err := Eval(Cmp("ghost", OpEq, value.NewInt(1)), map[string]value.Value{})
	require.Error(t, err)
	assert.True(t, dberr.Is(err, dberr.KindBadFilter))
}

func TestFilterIsNoneIsSome(t *testing.T) {
	fields := map[string]value.Value{"opt": value.None()}
	ok, err := Eval(CmpPresence("opt", OpIsNone), fields)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Eval(CmpPresence("opt", OpIsSome), fields)
	require.NoError(t, err)
	assert.False(t, ok)
}

func emailEntityDef() *schema.EntityDef {
	return &schema.EntityDef{
		Path:      "app.user",
		StorePath: "app.users",
		EntityID:  1,
		PKField:   "id",
		Indexes: []schema.IndexDef{
			{ID: 1, StorePath: "app.users.by_email", Fields: []string{"email"}, Unique: true},
		},
	}
}

func TestPlanPrefersIndexWhenFilterCoversIt(t *testing.T) {
	def := emailEntityDef()
	filter := And(Cmp("email", OpEq, value.NewText("x@y")))

	plan := BuildPlan(def, All(), &filter)
	require.Equal(t, PlanIndex, plan.Kind)
	assert.Equal(t, uint64(1), plan.Index.Index.ID)
	require.Len(t, plan.Index.Values, 1)
}

func TestPlanFallsBackToRangeWithoutCoverage(t *testing.T) {
	def := emailEntityDef()
	filter := Cmp("level", OpGte, value.NewInt(1))

	plan := BuildPlan(def, All(), &filter)
	assert.Equal(t, PlanRange, plan.Kind)
}

func TestPlanKeysWhenSelectorPinsKeys(t *testing.T) {
	def := emailEntityDef()
	k := key.New(value.FromValue(value.NewInt(9)))
	plan := BuildPlan(def, One(k), nil)
	assert.Equal(t, PlanKeys, plan.Kind)
	require.Len(t, plan.Keys, 1)
}
