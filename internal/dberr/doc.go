// Package dberr defines coredb's tagged error kinds (spec.md §7). Every
// error the core surfaces across a package boundary is one of these: a
// stable Kind discriminant plus a human-readable message, never a raw byte
// buffer. Callers compare Kind() rather than sentinel identity, so a
// caller's error-handling code keeps working even as message text evolves.
package dberr
