package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/coredb/internal/value"
)

func TestLenValidators(t *testing.T) {
	name := value.NewText("ab")
	assert.Equal(t, "", LenRange(1, 5)(name))
	assert.NotEqual(t, "", LenMin(3)(name))
	assert.Equal(t, "", LenMax(5)(name))
	assert.NotEqual(t, "", LenEqual(9)(name))
}

func TestNumValidators(t *testing.T) {
	n := value.NewInt(5)
	assert.Equal(t, "", NumGte(value.NewInt(1))(n))
	assert.NotEqual(t, "", NumLt(value.NewInt(1))(n))
	assert.Equal(t, "", NumRange(value.NewInt(0), value.NewInt(10))(n))
}

func TestTextValidators(t *testing.T) {
	lower := value.NewText("lower")
	assert.Equal(t, "", TextCase(CaseLower)(lower))
	assert.NotEqual(t, "", TextCase(CaseUpper)(lower))

	assert.Equal(t, "", TextRegex(`^[a-z]+$`)(lower))

	assert.Equal(t, "", TextColorRgbHex()(value.NewText("#aabbcc")))
	assert.NotEqual(t, "", TextColorRgbHex()(value.NewText("not-a-color")))
}

func TestNumClampSanitizer(t *testing.T) {
	clamp := NumClamp(value.NewInt(0), value.NewInt(10))
	assert.Equal(t, value.NewInt(10), clamp(value.NewInt(99)))
	assert.Equal(t, value.NewInt(0), clamp(value.NewInt(-5)))
	assert.Equal(t, value.NewInt(5), clamp(value.NewInt(5)))
}

func TestVisitorSanitizeTrimsAndLowercases(t *testing.T) {
	spec := EntitySpec{Fields: []FieldSpec{
		{Name: "email", Sanitizers: []Sanitizer{TextTrimSpace(), TextToLower()}},
	}}
	fields := map[string]value.Value{"email": value.NewText("  BOB@Example.com ")}

	out := NewVisitor().Sanitize(fields, spec)
	assert.Equal(t, "bob@example.com", out["email"].Text())
	// Original map untouched.
	assert.Equal(t, "  BOB@Example.com ", fields["email"].Text())
}

func TestVisitorSanitizeIsIdempotent(t *testing.T) {
	spec := EntitySpec{Fields: []FieldSpec{
		{Name: "email", Sanitizers: []Sanitizer{TextTrimSpace(), TextToLower()}},
	}}
	fields := map[string]value.Value{"email": value.NewText("  BOB@Example.com ")}

	once := NewVisitor().Sanitize(fields, spec)
	twice := NewVisitor().Sanitize(once, spec)
	assert.Equal(t, once["email"], twice["email"])
}

func TestVisitorValidateReportsPathedErrors(t *testing.T) {
	spec := EntitySpec{Fields: []FieldSpec{
		{Name: "name", Validators: []Validator{LenMin(3)}},
	}}
	fields := map[string]value.Value{"name": value.NewText("ab")}

	errs := NewVisitor().Validate(fields, spec)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Path.String())
}

func TestVisitorValidateRecursesIntoListElements(t *testing.T) {
	spec := EntitySpec{Fields: []FieldSpec{
		{Name: "tags", Validators: []Validator{LenMin(2)}},
	}}
	fields := map[string]value.Value{
		"tags": value.NewList([]value.Value{value.NewText("ok"), value.NewText("x")}),
	}

	errs := NewVisitor().Validate(fields, spec)
	require.Len(t, errs, 1)
	assert.Equal(t, "tags.[1]", errs[0].Path.String())
}
