package schema

import "github.com/dreamware/coredb/internal/value"

// UpdateView is a partial entity mutation (spec.md §9 "Update semantics"):
// a field absent from Fields and ListPatches preserves whatever value the
// stored row already has, so a caller updating one field doesn't have to
// resend the whole entity. Fields carries whole-value replacements;
// ListPatches carries additive collection mutations for fields the caller
// wants to patch rather than replace outright.
type UpdateView struct {
	Fields      map[string]value.Value
	ListPatches map[string][]value.ListPatch
}

// PatchableEntity is the optional capability an Entity type implements to
// support SaveExecutor.Patch. ApplyUpdateView must return a new Entity with
// view's fields merged over the receiver's own values and must leave the
// receiver unmodified; the executor still runs that result through the
// normal Validate/Codec pipeline exactly as it would a whole-entity Update.
type PatchableEntity interface {
	Entity
	ApplyUpdateView(view UpdateView) (Entity, error)
}
