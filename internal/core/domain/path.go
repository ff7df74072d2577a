package domain

import (
	"strings"
	"unique"
)

// PathSeparator separates task names inside a TaskPath.
const PathSeparator = "/"

// TaskPath addresses a task inside a board, e.g. "release/docs".
// It wraps a unique.Handle[string] so that repeated paths share storage and compare cheaply.
type TaskPath struct {
	h unique.Handle[string]
}

// NewTaskPath creates a TaskPath from its string form.
func NewTaskPath(s string) TaskPath {
	return TaskPath{h: unique.Make(strings.Trim(s, PathSeparator))}
}

// String returns the slash-separated path.
func (p TaskPath) String() string {
	var zero unique.Handle[string]
	if p.h == zero {
		return ""
	}
	return p.h.Value()
}

// IsZero reports whether the path is empty.
func (p TaskPath) IsZero() bool {
	return p.String() == ""
}

// Child returns the path of a direct child named name.
func (p TaskPath) Child(name string) TaskPath {
	if p.IsZero() {
		return NewTaskPath(name)
	}
	return NewTaskPath(p.String() + PathSeparator + name)
}

// Parent returns the enclosing path. Root paths have a zero parent.
func (p TaskPath) Parent() TaskPath {
	s := p.String()
	i := strings.LastIndex(s, PathSeparator)
	if i < 0 {
		return TaskPath{}
	}
	return NewTaskPath(s[:i])
}

// Base returns the last path segment.
func (p TaskPath) Base() string {
	s := p.String()
	return s[strings.LastIndex(s, PathSeparator)+1:]
}

// Depth returns the number of ancestors above the path.
func (p TaskPath) Depth() int {
	if p.IsZero() {
		return 0
	}
	return strings.Count(p.String(), PathSeparator)
}

// MarshalText implements encoding.TextMarshaler.
func (p TaskPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *TaskPath) UnmarshalText(text []byte) error {
	*p = NewTaskPath(string(text))
	return nil
}

// ValidTaskName reports whether name can be used as a single path segment.
func ValidTaskName(name string) bool {
	return strings.TrimSpace(name) != "" && !strings.Contains(name, PathSeparator)
}
