package exec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/hostkv"
	"github.com/dreamware/coredb/internal/indexstore"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/registry"
	"github.com/dreamware/coredb/internal/schema"
	"github.com/dreamware/coredb/internal/value"
	storeDS "github.com/dreamware/coredb/internal/datastore"
)

type user struct {
	ID    int64
	Name  string
	Email string
	Level int64
}

func (u user) EntityPath() string { return "app.user" }

func (u user) ProjectToValues() map[string]value.Value {
	return map[string]value.Value{
		"id":    value.NewInt(u.ID),
		"name":  value.NewText(u.Name),
		"email": value.NewText(u.Email),
		"level": value.NewInt(u.Level),
	}
}

func (u user) PrimaryKeyValue() value.IndexValue { return value.FromValue(value.NewInt(u.ID)) }
func (u user) SortKeyValues() []value.IndexValue  { return nil }

type jsonUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level int64  `json:"level"`
}

type userCodec struct{}

func (userCodec) Encode(e schema.Entity) ([]byte, error) {
	u := e.(user)
	return json.Marshal(jsonUser{ID: u.ID, Name: u.Name, Email: u.Email, Level: u.Level})
}

func (userCodec) Decode(path string, data []byte) (schema.Entity, error) {
	var j jsonUser
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return user{ID: j.ID, Name: j.Name, Email: j.Email, Level: j.Level}, nil
}

type harness struct {
	schemaReg *schema.Registry
	stores    *registry.StoreRegistry
	def       schema.EntityDef
}

func newHarness(t interface {
	require.TestingT
	Helper()
}) *harness {
	t.Helper()
	schemaReg := schema.NewRegistry(nil)
	require.NoError(t, schemaReg.RegisterStore(schema.StoreDef{Path: "app.users", Kind: schema.StoreKindData}))
	require.NoError(t, schemaReg.RegisterStore(schema.StoreDef{Path: "app.users.by_email", Kind: schema.StoreKindIndex}))

	def := schema.EntityDef{
		Path:      "app.user",
		StorePath: "app.users",
		EntityID:  1,
		PKField:   "id",
		Indexes: []schema.IndexDef{
			{ID: 1, StorePath: "app.users.by_email", Fields: []string{"email"}, Unique: true},
		},
	}
	require.NoError(t, schemaReg.Register(def, userCodec{}))

	stores := registry.New()
	require.NoError(t, stores.RegisterData("app.users", storeDS.New(hostkv.NewBTreeMap[key.DataKey, []byte](key.CmpDataKey))))
	require.NoError(t, stores.RegisterIndex("app.users.by_email", indexstore.New(hostkv.NewBTreeMap[key.IndexKey, indexstore.Entry](key.CmpIndexKey), true)))

	return &harness{schemaReg: schemaReg, stores: stores, def: def}
}

func userKey(id int64) query.Selector {
	return query.One(key.New(value.FromValue(value.NewInt(id))))
}

// S1: create, update, reload.
func TestScenarioCreateUpdateReload(t *testing.T) {
	h := newHarness(t)
	clock := NewStepClock(100, 10)
	save := NewSaveExecutor(h.schemaReg, h.stores, clock, nil)
	load := NewLoadExecutor(h.schemaReg, h.stores, nil)

	res, err := save.Save("app.user", user{ID: 1, Name: "a", Email: "a@x.com", Level: 1}, ModeCreate)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), res.CreatedMs)
	assert.Equal(t, uint64(100), res.ModifiedMs)

	res2, err := save.Save("app.user", user{ID: 1, Name: "b", Email: "a@x.com", Level: 1}, ModeUpdate)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), res2.CreatedMs)
	assert.Greater(t, res2.ModifiedMs, res2.CreatedMs)

	result, err := load.Load("app.user", Query{Selector: userKey(1), Format: FormatRows})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "b", result.Rows[0].Entity.(user).Name)
}

// S2: unique index violation.
func TestScenarioUniqueIndexViolation(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
	load := NewLoadExecutor(h.schemaReg, h.stores, nil)

	_, err := save.Save("app.user", user{ID: 1, Email: "x@y"}, ModeCreate)
	require.NoError(t, err)

	_, err = save.Save("app.user", user{ID: 2, Email: "x@y"}, ModeCreate)
	require.Error(t, err)
	assert.True(t, dberr.Is(err, dberr.KindIndexViolation))

	result, err := load.Load("app.user", Query{Selector: query.All(), Format: FormatRows})
	require.NoError(t, err)
	assert.Len(t, result.Rows, 1)
}

func TestCreateExistingIsKeyExists(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)

	_, err := save.Save("app.user", user{ID: 1, Email: "a@x"}, ModeCreate)
	require.NoError(t, err)

	_, err = save.Save("app.user", user{ID: 1, Email: "a@x"}, ModeCreate)
	require.Error(t, err)
	assert.True(t, dberr.Is(err, dberr.KindKeyExists))
}

func TestUpdateMissingIsKeyNotFound(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)

	_, err := save.Save("app.user", user{ID: 1, Email: "a@x"}, ModeUpdate)
	require.Error(t, err)
	assert.True(t, dberr.Is(err, dberr.KindKeyNotFound))
}

func TestIndexAssistedLookup(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
	load := NewLoadExecutor(h.schemaReg, h.stores, nil)

	require.NoError(t, saveAll(save, []user{
		{ID: 1, Email: "a@x"},
		{ID: 2, Email: "b@x"},
	}))

	filter := query.And(query.Cmp("email", query.OpEq, value.NewText("b@x")))
	result, err := load.Load("app.user", Query{Selector: query.All(), Filter: &filter, Format: FormatRows})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, int64(2), result.Rows[0].Entity.(user).ID)
}

func saveAll(save *SaveExecutor, users []user) error {
	for _, u := range users {
		if _, err := save.Save("app.user", u, ModeCreate); err != nil {
			return err
		}
	}
	return nil
}

func TestDeleteIsIdempotent(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
	del := NewDeleteExecutor(h.schemaReg, h.stores, nil)

	_, err := save.Save("app.user", user{ID: 1, Email: "a@x"}, ModeCreate)
	require.NoError(t, err)

	removed, err := del.Delete("app.user", userKey(1), nil)
	require.NoError(t, err)
	assert.Len(t, removed, 1)

	removedAgain, err := del.Delete("app.user", userKey(1), nil)
	require.NoError(t, err)
	assert.Len(t, removedAgain, 0)
}

func TestDeleteCleansIndexes(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
	del := NewDeleteExecutor(h.schemaReg, h.stores, nil)

	_, err := save.Save("app.user", user{ID: 1, Email: "a@x"}, ModeCreate)
	require.NoError(t, err)
	_, err = del.Delete("app.user", userKey(1), nil)
	require.NoError(t, err)

	// Re-creating a different row with the same email must succeed now
	// that the old index entry was cleaned up.
	_, err = save.Save("app.user", user{ID: 2, Email: "a@x"}, ModeCreate)
	require.NoError(t, err)
}

func TestSortAndPaginate(t *testing.T) {
	h := newHarness(t)
	save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
	load := NewLoadExecutor(h.schemaReg, h.stores, nil)

	require.NoError(t, saveAll(save, []user{
		{ID: 1, Email: "a@x", Level: 3},
		{ID: 2, Email: "b@x", Level: 1},
		{ID: 3, Email: "c@x", Level: 2},
	}))

	limit := uint32(2)
	result, err := load.Load("app.user", Query{
		Selector: query.All(),
		Sort:     []SortKey{{Field: "level", Direction: Asc}},
		Limit:    &limit,
		Format:   FormatRows,
	})
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, int64(1), result.Rows[0].Entity.(user).Level)
	assert.Equal(t, int64(2), result.Rows[1].Entity.(user).Level)
}
