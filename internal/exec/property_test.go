package exec

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/query"
	"github.com/dreamware/coredb/internal/value"
)

// TestPropertyCodecRoundTrip asserts spec.md §8 invariant 1:
// deserialize(serialize(e)) == e, field by field, for arbitrary user rows.
func TestPropertyCodecRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := user{
			ID:    rapid.Int64Range(1, 1_000_000).Draw(t, "id"),
			Name:  rapid.String().Draw(t, "name"),
			Email: genEmail(t),
			Level: genLevel(t, "level"),
		}

		encoded, err := (userCodec{}).Encode(u)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := (userCodec{}).Decode("app.user", encoded)
		if err != nil {
			t.Fatal(err)
		}
		if decoded.(user) != u {
			t.Fatalf("round trip changed the entity: got %+v, want %+v", decoded, u)
		}
	})
}

// TestPropertySaveThenLoadReturnsSameEntity asserts spec.md §8 invariant 2:
// after save(e) in any mode, load(One(pk(e))).entity() == e.
func TestPropertySaveThenLoadReturnsSameEntity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := newHarness(t)
		save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
		load := NewLoadExecutor(h.schemaReg, h.stores, nil)

		u := user{
			ID:    rapid.Int64Range(1, 1_000_000).Draw(t, "id"),
			Name:  rapid.String().Draw(t, "name"),
			Email: genEmail(t),
			Level: genLevel(t, "level"),
		}

		if _, err := save.Save("app.user", u, ModeCreate); err != nil {
			t.Fatal(err)
		}

		result, err := load.Load("app.user", Query{Selector: userKey(u.ID), Format: FormatRows})
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Rows) != 1 {
			t.Fatalf("expected exactly one row back, got %d", len(result.Rows))
		}
		if result.Rows[0].Entity.(user) != u {
			t.Fatalf("loaded entity differs from saved: got %+v, want %+v", result.Rows[0].Entity, u)
		}
	})
}

// genLevel draws a small int64 for a user's Level field. genEmail picks
// one of a handful of emails, so the unique index sees genuine collisions
// during the run.
func genLevel(t *rapid.T, label string) int64 {
	return rapid.Int64Range(0, 1000).Draw(t, label)
}

func genEmail(t *rapid.T) string {
	n := rapid.IntRange(0, 3).Draw(t, "email_bucket")
	return fmt.Sprintf("user%d@example.com", n)
}

// TestPropertyUniqueIndexExclusivity asserts spec.md §8 invariant 4:
// |index_store(I).get(k)| <= 1 whenever I.unique, after an arbitrary
// sequence of creates against a small, colliding email space.
func TestPropertyUniqueIndexExclusivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := newHarness(t)
		save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)

		n := rapid.IntRange(1, 20).Draw(t, "n")
		succeeded := make(map[string]int64) // email -> id that won it
		for i := 0; i < n; i++ {
			id := int64(i + 1)
			email := genEmail(t)
			_, err := save.Save("app.user", user{ID: id, Email: email, Level: genLevel(t, "level")}, ModeCreate)
			if err == nil {
				if _, taken := succeeded[email]; taken {
					t.Fatalf("email %q accepted twice despite unique index", email)
				}
				succeeded[email] = id
			}
		}

		idx, err := h.stores.Index("app.users.by_email")
		if err != nil {
			t.Fatal(err)
		}
		for email := range succeeded {
			ik := key.NewIndexKey(h.def.EntityID, h.def.Indexes[0].ID, key.New(value.FromValue(value.NewText(email))))
			dks, ok := idx.Lookup(ik)
			if !ok || len(dks) != 1 {
				t.Fatalf("email %q: expected exactly one index entry, got %d", email, len(dks))
			}
		}
	})
}

// TestPropertyIndexConsistencyAfterSaveDelete asserts spec.md §8
// invariant 3: after an arbitrary sequence of saves and deletes, every
// index entry's primary key still resolves to a live row. Whether that
// row's email matches the entry's index key is not checked here.
func TestPropertyIndexConsistencyAfterSaveDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := newHarness(t)
		save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
		del := NewDeleteExecutor(h.schemaReg, h.stores, nil)
		load := NewLoadExecutor(h.schemaReg, h.stores, nil)

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		live := make(map[int64]bool)
		for i := 0; i < steps; i++ {
			id := rapid.Int64Range(1, 8).Draw(t, "id")
			if rapid.Bool().Draw(t, "delete") && live[id] {
				if _, err := del.Delete("app.user", userKey(id), nil); err != nil {
					t.Fatal(err)
				}
				live[id] = false
				continue
			}
			mode := ModeReplace
			_, err := save.Save("app.user", user{ID: id, Email: genEmail(t), Level: genLevel(t, "level")}, mode)
			if err == nil {
				live[id] = true
			}
		}

		idx, err := h.stores.Index("app.users.by_email")
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range idx.Range(key.IndexKey{}, key.IndexKey{EntityID: ^uint64(0), IndexDefID: ^uint64(0)}) {
			for _, dk := range e.Value.DataKeys() {
				result, err := load.Load("app.user", Query{Selector: query.One(dk.Key), Format: FormatRows})
				if err != nil {
					t.Fatal(err)
				}
				if len(result.Rows) != 1 {
					t.Fatalf("index entry %v points at a dead row %v", e.Key, dk)
				}
			}
		}
	})
}

// TestPropertyIdempotentDelete asserts spec.md §8 invariant 8: deleting
// the same selector twice returns the same keys the first time and none
// the second.
func TestPropertyIdempotentDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := newHarness(t)
		save := NewSaveExecutor(h.schemaReg, h.stores, FixedClock(1), nil)
		del := NewDeleteExecutor(h.schemaReg, h.stores, nil)

		id := rapid.Int64Range(1, 1000).Draw(t, "id")
		present := rapid.Bool().Draw(t, "present")
		if present {
			if _, err := save.Save("app.user", user{ID: id, Email: genEmail(t)}, ModeCreate); err != nil {
				t.Fatal(err)
			}
		}

		first, err := del.Delete("app.user", userKey(id), nil)
		if err != nil {
			t.Fatal(err)
		}
		second, err := del.Delete("app.user", userKey(id), nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(second) != 0 {
			t.Fatalf("second delete of the same key returned %d keys, want 0", len(second))
		}
		if present && len(first) != 1 {
			t.Fatalf("first delete of a present key returned %d keys, want 1", len(first))
		}
		if !present && len(first) != 0 {
			t.Fatalf("first delete of an absent key returned %d keys, want 0", len(first))
		}
	})
}
