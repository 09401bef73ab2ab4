package validate

import "github.com/dreamware/coredb/internal/value"

// FieldSpec declares the sanitizers and validators one entity field runs
// through. Rules apply to the field's own value (sanitize_self /
// validate_self); when the field holds a List, the same rule sets are
// also applied to each element (sanitize_children / validate_children)
// unless ElementRules is supplied to use a distinct rule set for elements.
type FieldSpec struct {
	Name       string
	Sanitizers []Sanitizer
	Validators []Validator

	// ElementRules, if non-nil, overrides the rules applied to each
	// element of a List-typed field; otherwise Sanitizers/Validators
	// double as the element rules.
	ElementRules *FieldSpec
}

// EntitySpec is the field-level rule table a Visitor drives recursively
// over one entity's projected fields.
type EntitySpec struct {
	Fields []FieldSpec
}

// Visitor applies an EntitySpec's sanitize/validate hooks to a field map,
// the shape spec.md §4.4 calls "a Visitor drives these recursively".
type Visitor struct{}

// NewVisitor constructs a Visitor. It carries no state; sanitize/validate
// passes are pure functions of their inputs.
func NewVisitor() Visitor { return Visitor{} }

// Sanitize runs every field's sanitizers over fields, returning a new map
// (fields itself is not mutated, since value.Value is immutable). List
// fields are drain-rebuilt: each element is sanitized independently and
// the field's value is replaced by the rebuilt list (spec.md §4.4:
// "mutating visits of sets/maps drain-rebuild the container").
func (Visitor) Sanitize(fields map[string]value.Value, spec EntitySpec) map[string]value.Value {
	out := make(map[string]value.Value, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	for _, fs := range spec.Fields {
		v, present := out[fs.Name]
		if !present {
			continue
		}
		out[fs.Name] = sanitizeValue(v, fs)
	}
	return out
}

func sanitizeValue(v value.Value, fs FieldSpec) value.Value {
	for _, s := range fs.Sanitizers {
		v = s(v)
	}
	if v.Kind() == value.KindList {
		elemRules := fs
		if fs.ElementRules != nil {
			elemRules = *fs.ElementRules
		}
		old := v.List()
		rebuilt := make([]value.Value, len(old))
		for i, elem := range old {
			rebuilt[i] = sanitizeValue(elem, elemRules)
		}
		v = value.NewList(rebuilt)
	}
	return v
}

// Validate runs every field's validators over fields and returns the
// flattened error tree, each leaf located by a Path rooted at the field
// name (spec.md §4.4).
func (Visitor) Validate(fields map[string]value.Value, spec EntitySpec) Errors {
	var errs Errors
	for _, fs := range spec.Fields {
		v, present := fields[fs.Name]
		if !present {
			continue
		}
		errs = append(errs, validateValue(v, fs, Path{Field(fs.Name)})...)
	}
	return errs
}

func validateValue(v value.Value, fs FieldSpec, path Path) Errors {
	var errs Errors
	for _, validator := range fs.Validators {
		if msg := validator(v); msg != "" {
			errs = append(errs, Error{Path: append(Path{}, path...), Message: msg})
		}
	}

	if v.Kind() == value.KindList {
		elemRules := fs
		if fs.ElementRules != nil {
			elemRules = *fs.ElementRules
		}
		for i, elem := range v.List() {
			childPath := append(append(Path{}, path...), Index(i))
			errs = append(errs, validateValue(elem, elemRules, childPath)...)
		}
	}
	return errs
}
