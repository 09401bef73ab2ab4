package validate

import (
	"fmt"
	"strconv"
	"strings"
)

type segKind uint8

const (
	segEmpty segKind = iota
	segField
	segIndex
)

// PathSegment locates one step of a recursive visit: a struct field name or
// a sequence index (spec.md §4.4). The zero PathSegment is the empty
// segment, used at the root. value.Value has no map-shaped kind, so there
// is no "key"/"value" half of an entry to locate; add that segment kind
// only alongside a map-bearing Value variant.
type PathSegment struct {
	kind  segKind
	field string
	index int
}

// Field builds a "field" path segment.
func Field(name string) PathSegment { return PathSegment{kind: segField, field: name} }

// Index builds an index path segment for sequence elements.
func Index(i int) PathSegment { return PathSegment{kind: segIndex, index: i} }

// String renders the segment the way a JSON-path locator would.
func (s PathSegment) String() string {
	switch s.kind {
	case segField:
		return s.field
	case segIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	default:
		return ""
	}
}

// Path is an ordered chain of PathSegments from an entity's root to the
// value an error concerns.
type Path []PathSegment

func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, seg := range p {
		if s := seg.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// Error is one leaf of the validation error tree: a located message.
type Error struct {
	Path    Path
	Message string
}

func (e Error) String() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Errors is the flattened error tree the Visitor produces; empty means
// the entity is valid.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "no validation errors"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}
