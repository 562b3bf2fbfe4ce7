// Package registry guarantees that every file a generation run emits has a
// canonical, collision-free path, and provides the snapshot/restore
// primitive the phase pipeline uses to roll back a failed phase's writes.
package registry

import (
	"strings"

	"github.com/schemaforge/servergen/internal/core/errs"
)

// Canonicalize normalizes a path the way every registry lookup expects:
// backslashes become forward slashes, "." segments vanish, ".." segments
// pop the preceding segment, and empty segments (from "//" or a leading
// "/") collapse away. The result never starts with a slash.
func Canonicalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	segments := strings.Split(p, "/")
	stack := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return strings.Join(stack, "/")
}

// caseInsensitiveKey derives the comparison key the registry indexes on.
// The policy assumes a case-insensitive filesystem, the conservative
// default per the design notes: two paths differing only by case are
// treated as the same file.
func caseInsensitiveKey(canonical string) string {
	return strings.ToLower(canonical)
}

// entry is what the registry remembers about one registered path.
type entry struct {
	Canonical string
	Source    string
	Model     string
}

// FilePathRegistry is the single source of truth for "has this path
// already been claimed." It is not safe for concurrent use on its own —
// callers running per-model work in parallel (the SDK phase) must merge
// under a single lock, per the concurrency model.
type FilePathRegistry struct {
	entries map[string]entry
}

func NewFilePathRegistry() *FilePathRegistry {
	return &FilePathRegistry{entries: make(map[string]entry)}
}

// Register claims path for source (optionally scoped to model). It fails
// with a *errs.PathCollision when another entry already maps to the same
// case-insensitive key with a different canonical form or a different
// owning source.
func (r *FilePathRegistry) Register(path, source, model string) error {
	canonical := Canonicalize(path)
	key := caseInsensitiveKey(canonical)

	if existing, ok := r.entries[key]; ok {
		if existing.Canonical != canonical || existing.Source != source {
			return &errs.PathCollision{
				Path:      path,
				Canonical: canonical,
				Owner:     existing.Source,
				Attempted: source,
			}
		}
		return nil
	}

	r.entries[key] = entry{Canonical: canonical, Source: source, Model: model}
	return nil
}

// TryRegister is Register without the error return: success registers the
// path and returns true; failure appends a validation diagnostic to
// collector and returns false.
func (r *FilePathRegistry) TryRegister(path, source, model string, collector *errs.ErrorCollector) bool {
	if err := r.Register(path, source, model); err != nil {
		collector.Report(errs.SeverityValidation, "", "path-collision", err.Error())
		return false
	}
	return true
}

// Has reports whether path (any case) is already registered.
func (r *FilePathRegistry) Has(path string) bool {
	_, ok := r.entries[caseInsensitiveKey(Canonicalize(path))]
	return ok
}

// Len reports how many distinct canonical paths are registered.
func (r *FilePathRegistry) Len() int {
	return len(r.entries)
}

// Snapshot is an opaque, independent copy of the registry's current state.
type Snapshot struct {
	entries map[string]entry
}

// Snapshot captures the registry's current state for later Restore.
func (r *FilePathRegistry) Snapshot() Snapshot {
	copied := make(map[string]entry, len(r.entries))
	for k, v := range r.entries {
		copied[k] = v
	}
	return Snapshot{entries: copied}
}

// Restore replaces the registry's state with a previously captured
// snapshot, discarding anything registered since.
func (r *FilePathRegistry) Restore(s Snapshot) {
	copied := make(map[string]entry, len(s.entries))
	for k, v := range s.entries {
		copied[k] = v
	}
	r.entries = copied
}
