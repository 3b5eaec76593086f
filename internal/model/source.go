// Package model defines the data structures exchanged by the catching-test engine.
package model

// Path represents a file system path.
type Path string

// Accessibility describes the visibility of the declaration enclosing a mutated span.
type Accessibility string

const (
	// AccessPublic marks declarations reachable from outside their package.
	AccessPublic Accessibility = "public"
	// AccessProtected marks declarations reachable only through embedding or subtyping.
	AccessProtected Accessibility = "protected"
	// AccessPrivate marks declarations reachable only inside their package.
	AccessPrivate Accessibility = "private"
	// AccessInternal marks exported members hanging off a non-exported owner.
	AccessInternal Accessibility = "internal"
	// AccessUnknown is used when the enclosing declaration could not be resolved.
	AccessUnknown Accessibility = ""
)

// IsPublic reports whether mutants scoped to this accessibility bypass the
// non-public quota. Unresolved scopes are not penalised.
func (a Accessibility) IsPublic() bool {
	return a == AccessPublic || a == AccessUnknown
}

// LineRange is an inclusive, 1-based line span inside a source file.
type LineRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Contains reports whether line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}
