package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dreamware/coredb/internal/value"
)

// Validator is a pure function from a Value to an error message, or "" if
// the value is acceptable (spec.md §4.4: "validators are pure functions").
type Validator func(v value.Value) string

func valueLen(v value.Value) (int, bool) {
	switch v.Kind() {
	case value.KindText:
		return len(v.Text()), true
	case value.KindBlob:
		return len(v.Blob()), true
	case value.KindList:
		return len(v.List()), true
	default:
		return 0, false
	}
}

// LenEqual requires the value's length (Text/Blob/List) to equal n.
func LenEqual(n int) Validator {
	return func(v value.Value) string {
		l, ok := valueLen(v)
		if !ok {
			return "len::Equal applied to a value with no length"
		}
		if l != n {
			return fmt.Sprintf("length must equal %d, got %d", n, l)
		}
		return ""
	}
}

// LenMin requires length >= n.
func LenMin(n int) Validator {
	return func(v value.Value) string {
		l, ok := valueLen(v)
		if !ok {
			return "len::Min applied to a value with no length"
		}
		if l < n {
			return fmt.Sprintf("length must be at least %d, got %d", n, l)
		}
		return ""
	}
}

// LenMax requires length <= n.
func LenMax(n int) Validator {
	return func(v value.Value) string {
		l, ok := valueLen(v)
		if !ok {
			return "len::Max applied to a value with no length"
		}
		if l > n {
			return fmt.Sprintf("length must be at most %d, got %d", n, l)
		}
		return ""
	}
}

// LenRange requires min <= length <= max.
func LenRange(min, max int) Validator {
	return func(v value.Value) string {
		l, ok := valueLen(v)
		if !ok {
			return "len::Range applied to a value with no length"
		}
		if l < min || l > max {
			return fmt.Sprintf("length must be in [%d, %d], got %d", min, max, l)
		}
		return ""
	}
}

// NumLt requires v < bound.
func NumLt(bound value.Value) Validator {
	return func(v value.Value) string {
		if value.Cmp(v, bound) >= 0 {
			return fmt.Sprintf("must be less than %s", bound)
		}
		return ""
	}
}

// NumLte requires v <= bound.
func NumLte(bound value.Value) Validator {
	return func(v value.Value) string {
		if value.Cmp(v, bound) > 0 {
			return fmt.Sprintf("must be at most %s", bound)
		}
		return ""
	}
}

// NumGt requires v > bound.
func NumGt(bound value.Value) Validator {
	return func(v value.Value) string {
		if value.Cmp(v, bound) <= 0 {
			return fmt.Sprintf("must be greater than %s", bound)
		}
		return ""
	}
}

// NumGte requires v >= bound.
func NumGte(bound value.Value) Validator {
	return func(v value.Value) string {
		if value.Cmp(v, bound) < 0 {
			return fmt.Sprintf("must be at least %s", bound)
		}
		return ""
	}
}

// NumRange requires min <= v <= max.
func NumRange(min, max value.Value) Validator {
	return func(v value.Value) string {
		if value.Cmp(v, min) < 0 || value.Cmp(v, max) > 0 {
			return fmt.Sprintf("must be in [%s, %s]", min, max)
		}
		return ""
	}
}

// TextCaseKind selects which case TextCase requires: entirely lower- or
// upper-case.
type TextCaseKind uint8

const (
	CaseLower TextCaseKind = iota
	CaseUpper
)

// TextCase validates that a Text value matches the requested case.
func TextCase(kind TextCaseKind) Validator {
	return func(v value.Value) string {
		s := v.Text()
		switch kind {
		case CaseLower:
			if s != strings.ToLower(s) {
				return "must be lower case"
			}
		case CaseUpper:
			if s != strings.ToUpper(s) {
				return "must be upper case"
			}
		}
		return ""
	}
}

// TextRegex validates that a Text value contains a match for pattern. The
// pattern is not anchored: a match anywhere in the text passes.
func TextRegex(pattern string) Validator {
	re := regexp.MustCompile(pattern)
	return func(v value.Value) string {
		if !re.MatchString(v.Text()) {
			return fmt.Sprintf("must match pattern %q", pattern)
		}
		return ""
	}
}

var (
	rgbHexPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	rgbaHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)
)

// TextColorRgbHex validates a "#RRGGBB" color string.
func TextColorRgbHex() Validator {
	return func(v value.Value) string {
		if !rgbHexPattern.MatchString(v.Text()) {
			return "must be a #RRGGBB color"
		}
		return ""
	}
}

// TextColorRgbaHex validates a "#RRGGBBAA" color string.
func TextColorRgbaHex() Validator {
	return func(v value.Value) string {
		if !rgbaHexPattern.MatchString(v.Text()) {
			return "must be a #RRGGBBAA color"
		}
		return ""
	}
}
