// Package validate implements coredb's sanitization and validation
// pipeline (spec.md §4.4): a recursive Visitor that normalizes an entity's
// fields in place and collects a tree of error messages located by
// PathSegment, plus the built-in validator/sanitizer families every field
// can be declared against.
package validate
