package value

// ListPatch is one additive mutation applied to a List-kind Value, so a
// caller updating a collection field doesn't have to round-trip the whole
// list (spec.md §9 "Update semantics"). Each constructor below builds a
// ListPatch; ApplyListPatches runs a sequence of them against a base list in
// order.
type ListPatch struct {
	op    listOp
	index int
	value Value
}

type listOp uint8

const (
	listOpUpsert listOp = iota
	listOpRemove
	listOpClear
	listOpInsert
	listOpUpdate
)

// ListUpsert appends item if no equal element (per Cmp) is already present,
// otherwise leaves the list unchanged.
func ListUpsert(item Value) ListPatch { return ListPatch{op: listOpUpsert, value: item} }

// ListRemove deletes every element equal to item.
func ListRemove(item Value) ListPatch { return ListPatch{op: listOpRemove, value: item} }

// ListClear empties the list, ignoring any element value carried alongside it.
func ListClear() ListPatch { return ListPatch{op: listOpClear} }

// ListInsert inserts item at index, shifting later elements right. An
// out-of-range index is clamped to the nearest valid insertion point (0 or
// len(list)) rather than erroring, so patches stay applicable across
// concurrent length changes.
func ListInsert(index int, item Value) ListPatch {
	return ListPatch{op: listOpInsert, index: index, value: item}
}

// ListUpdateAt replaces the element at index with item. An out-of-range
// index is a no-op.
func ListUpdateAt(index int, item Value) ListPatch {
	return ListPatch{op: listOpUpdate, index: index, value: item}
}

// ApplyListPatches runs patches against base in order and returns the
// resulting List Value. base must be a List (or None, treated as empty).
func ApplyListPatches(base Value, patches []ListPatch) Value {
	var items []Value
	if base.Kind() == KindList {
		items = append(items, base.List()...)
	}

	for _, p := range patches {
		switch p.op {
		case listOpUpsert:
			found := false
			for _, v := range items {
				if Cmp(v, p.value) == 0 {
					found = true
					break
				}
			}
			if !found {
				items = append(items, p.value)
			}
		case listOpRemove:
			kept := items[:0:0]
			for _, v := range items {
				if Cmp(v, p.value) != 0 {
					kept = append(kept, v)
				}
			}
			items = kept
		case listOpClear:
			items = nil
		case listOpInsert:
			idx := p.index
			if idx < 0 {
				idx = 0
			}
			if idx > len(items) {
				idx = len(items)
			}
			items = append(items, Value{})
			copy(items[idx+1:], items[idx:])
			items[idx] = p.value
		case listOpUpdate:
			if p.index >= 0 && p.index < len(items) {
				items[p.index] = p.value
			}
		}
	}

	return NewList(items)
}
