package resolver

import "fmt"

// NotFoundError is returned when no import path is known for the requested
// package name.  It names the unresolved identifier so callers can report or
// retry.
type NotFoundError struct {
	// Name is the package name that failed to resolve.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package not found: %s", e.Name)
}

// AmbiguousImportError is returned when multiple import paths are known for
// the requested package name.  It is a first-class result variant, not a
// failure: the caller owns selection among the candidates.
type AmbiguousImportError struct {
	// Name is the package name that is ambiguous.
	Name string
	// Candidates is the full set of import paths for the name, sorted.
	Candidates []string
}

func (e *AmbiguousImportError) Error() string {
	return fmt.Sprintf("found multiple import paths for %q: %v", e.Name, e.Candidates)
}
