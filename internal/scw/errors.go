package scw

import "errors"

// Error categories for the transfer workflow. All failures wrap one of
// these so callers can branch with errors.Is; plain I/O failures wrap the
// underlying os error instead.
var (
	// ErrFormat marks a malformed header line, record line or an
	// out-of-order record stream.
	ErrFormat = errors.New("malformed weight file")

	// ErrSelection marks a missing or wrong-typed export source.
	ErrSelection = errors.New("invalid export selection")

	// ErrAlreadyBound marks an import target that already carries a
	// skinCluster.
	ErrAlreadyBound = errors.New("target already bound")

	// ErrNameMismatch marks influence or target names from the file that
	// do not exist at the destination. Remediation (renaming) is up to the
	// caller; this is not a format error.
	ErrNameMismatch = errors.New("influence name mismatch")
)
