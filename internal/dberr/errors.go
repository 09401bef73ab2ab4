package dberr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the stable discriminant every Error carries. New Kinds may be
// appended; existing ones are never renumbered or reused, so a caller's
// switch on Kind() keeps meaning the same thing release over release.
type Kind uint8

const (
	_ Kind = iota

	// Schema errors (spec.md §7 SchemaError).
	KindEntityNotFound
	KindStoreNotFound
	KindDuplicate
	KindBadPrimaryKey

	// Store errors (spec.md §7 StoreError).
	KindKeyNotFound
	KindKeyExists
	KindIndexViolation
	KindSerdeFailure

	// Query errors (spec.md §7 QueryError).
	KindQueryEntityNotFound
	KindSelectorNotSupported
	KindShapeNotSupported
	KindBadFilter

	// Validation (spec.md §7 ValidationError).
	KindValidation

	// Resolver errors (spec.md §7 ResolverError).
	KindUnknownIndex
	KindKeyProjectionFailed
)

var kindNames = map[Kind]string{
	KindEntityNotFound:      "EntityNotFound",
	KindStoreNotFound:       "StoreNotFound",
	KindDuplicate:           "Duplicate",
	KindBadPrimaryKey:       "BadPrimaryKey",
	KindKeyNotFound:         "KeyNotFound",
	KindKeyExists:           "KeyExists",
	KindIndexViolation:      "IndexViolation",
	KindSerdeFailure:        "SerdeFailure",
	KindQueryEntityNotFound: "QueryEntityNotFound",
	KindSelectorNotSupported: "SelectorNotSupported",
	KindShapeNotSupported:   "ShapeNotSupported",
	KindBadFilter:           "BadFilter",
	KindValidation:          "Validation",
	KindUnknownIndex:        "UnknownIndex",
	KindKeyProjectionFailed: "KeyProjectionFailed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is the concrete type behind every tagged error coredb returns.
// Context is a short machine-relevant value (a path, a key's string form),
// never a raw byte buffer, per spec.md §7's "errors never carry raw byte
// buffers".
type Error struct {
	Kind    Kind
	Context string
	cause   error
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Unwrap exposes any wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds a tagged Error with no wrapped cause.
func New(kind Kind, context string) *Error {
	return &Error{Kind: kind, Context: context}
}

// Wrap builds a tagged Error wrapping cause with a stack trace attached via
// github.com/pkg/errors, so operators get a trace without the typed error
// losing its Kind.
func Wrap(kind Kind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, cause: errors.WithStack(cause)}
}

// Is reports whether err is a dberr.Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
