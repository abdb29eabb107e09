// Package store implements the tagged, levelled field store that is the
// neutral in-memory representation of a single bibliographic reference, and
// the ordered collection of references that a read/write pass operates on.
package store

import (
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

// Level encodes container depth: the work itself, its immediate container
// (journal, proceedings, containing book), the series containing that
// container, and so on.
type Level int

const (
	// LevelMain is the work itself.
	LevelMain Level = 0
	// LevelHost is the immediate container (journal, proceedings, book).
	LevelHost Level = 1
	// LevelSeries is the series containing the host.
	LevelSeries Level = 2
	// LevelOrig distinguishes the original of a reprint.
	LevelOrig Level = 3
	// LevelAny is a wildcard accepted by queries; never stored on an entry.
	LevelAny Level = -1
)

// Charset identifies a detected or requested character encoding.
type Charset int

const (
	CharsetUnknown Charset = iota
	CharsetUnicode         // UTF-8
	CharsetGB18030
	CharsetDefault
)

// CharsetSource records whether a charset came from a default, was sniffed
// from the file, or was forced by the caller. A user override always
// supersedes file auto-detection.
type CharsetSource int

const (
	SourceDefault CharsetSource = iota
	SourceFile
	SourceUser
)

// Status mirrors the four library-level return codes of the original
// bibutils API.
type Status int

const (
	OK Status = iota
	BadInput
	MemErr
	CantOpen
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case BadInput:
		return "BadInput"
	case MemErr:
		return "MemErr"
	case CantOpen:
		return "CantOpen"
	default:
		return "Unknown"
	}
}

// Error wraps a Status with context: a field/tag and an optional wrapped
// cause, satisfying Unwrap.
type Error struct {
	Status  Status
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Status.String() + ": " + e.Message + ": " + e.Cause.Error()
	}
	if e.Field != "" {
		return e.Status.String() + ": " + e.Field + ": " + e.Message
	}
	return e.Status.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// NotFound is the sentinel index returned by Find when no entry matches.
const NotFound = -1

// Entry is one (tag, value, level) triple plus the "used" bookkeeping flag
// the converter relies on to avoid double-processing.
type Entry struct {
	Tag   string
	Value string
	Level Level
	Used  bool

	// Extra carries opaque per-format passthrough data that doesn't map
	// cleanly onto a single tag/value pair, set through Reference.SetExtra.
	// No reader in this module sets it.
	Extra *structpb.Struct
}

// Reference is the ordered field store for a single bibliographic record.
// Insertion order is preserved; duplicate (tag, level) pairs are permitted.
type Reference struct {
	entries []Entry
}

// NewReference allocates an empty reference.
func NewReference() *Reference {
	return &Reference{}
}

// Add appends a new entry. Empty values are tolerated; writers skip them.
func (r *Reference) Add(tag, value string, level Level) {
	r.entries = append(r.entries, Entry{Tag: tag, Value: value, Level: level})
}

// AddCanDup is semantically identical to Add; it exists to document call
// sites (name lists, keyword lists) that rely on duplicates being kept
// without even a conceptual uniqueness check.
func (r *Reference) AddCanDup(tag, value string, level Level) {
	r.Add(tag, value, level)
}

// ReplaceOrAdd overwrites the most recently added entry with the same
// (tag, level), or appends a new one if none exists.
func (r *Reference) ReplaceOrAdd(tag, value string, level Level) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := &r.entries[i]
		if strings.EqualFold(e.Tag, tag) && e.Level == level {
			e.Value = value
			return
		}
	}
	r.Add(tag, value, level)
}

// Find returns the index of the first entry matching tag (case-insensitive)
// and level (LevelAny matches any level), or NotFound.
func (r *Reference) Find(tag string, level Level) int {
	for i, e := range r.entries {
		if strings.EqualFold(e.Tag, tag) && (level == LevelAny || e.Level == level) {
			return i
		}
	}
	return NotFound
}

// FindValue returns the value of the first matching entry, or "".
func (r *Reference) FindValue(level Level, tag string) string {
	i := r.Find(tag, level)
	if i == NotFound {
		return ""
	}
	return r.entries[i].Value
}

// FindValueFirstOf returns the value of the first tag (in priority order)
// that has any value at the given level.
func (r *Reference) FindValueFirstOf(level Level, tags ...string) string {
	for _, tag := range tags {
		if v := r.FindValue(level, tag); v != "" {
			return v
		}
	}
	return ""
}

// FindValueEach appends the values of every entry matching tag/level to out
// and returns the extended slice.
func (r *Reference) FindValueEach(level Level, tag string, out []string) []string {
	for _, e := range r.entries {
		if strings.EqualFold(e.Tag, tag) && (level == LevelAny || e.Level == level) {
			out = append(out, e.Value)
		}
	}
	return out
}

// FindEach returns the indices of every entry matching tag/level.
func (r *Reference) FindEach(tag string, level Level) []int {
	var out []int
	for i, e := range r.entries {
		if strings.EqualFold(e.Tag, tag) && (level == LevelAny || e.Level == level) {
			out = append(out, i)
		}
	}
	return out
}

// Tag returns the tag of entry i.
func (r *Reference) Tag(i int) string { return r.entries[i].Tag }

// Value returns the value of entry i.
func (r *Reference) Value(i int) string { return r.entries[i].Value }

// SetValue overwrites the value of entry i.
func (r *Reference) SetValue(i int, v string) { r.entries[i].Value = v }

// Level returns the level of entry i.
func (r *Reference) Level(i int) Level { return r.entries[i].Level }

// Num returns the number of entries.
func (r *Reference) Num() int { return len(r.entries) }

// MaxLevel returns the largest level present in the reference, or
// LevelMain if the reference is empty.
func (r *Reference) MaxLevel() Level {
	max := LevelMain
	for _, e := range r.entries {
		if e.Level > max {
			max = e.Level
		}
	}
	return max
}

// SetUsed marks entry i as consumed by the converter.
func (r *Reference) SetUsed(i int) { r.entries[i].Used = true }

// Used reports whether entry i has been consumed.
func (r *Reference) Used(i int) bool { return r.entries[i].Used }

// ClearUsedAll resets the used flag on every entry.
func (r *Reference) ClearUsedAll() {
	for i := range r.entries {
		r.entries[i].Used = false
	}
}

// Entries exposes the underlying slice for iteration; callers must not
// mutate its length (use Add).
func (r *Reference) Entries() []Entry { return r.entries }

// SetExtra attaches opaque per-format data to entry i.
func (r *Reference) SetExtra(i int, key string, value any) {
	e := &r.entries[i]
	if e.Extra == nil {
		e.Extra = &structpb.Struct{Fields: make(map[string]*structpb.Value)}
	}
	v, err := structpb.NewValue(value)
	if err == nil {
		e.Extra.Fields[key] = v
	}
}

// GetExtra retrieves opaque per-format data from entry i.
func (r *Reference) GetExtra(i int, key string) (any, bool) {
	e := &r.entries[i]
	if e.Extra == nil || e.Extra.Fields == nil {
		return nil, false
	}
	v, ok := e.Extra.Fields[key]
	if !ok {
		return nil, false
	}
	return v.AsInterface(), true
}

// Collection is an ordered, growable list of references.
type Collection struct {
	refs []*Reference
}

// NewCollection allocates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Append adds a reference, transferring ownership to the collection.
func (c *Collection) Append(r *Reference) {
	c.refs = append(c.refs, r)
}

// Len returns the number of references.
func (c *Collection) Len() int { return len(c.refs) }

// At returns the reference at index i.
func (c *Collection) At(i int) *Reference { return c.refs[i] }

// All returns the underlying slice for iteration.
func (c *Collection) All() []*Reference { return c.refs }

// FindByRefnum returns the reference whose REFNUM entry equals refnum
// (case-insensitive), or nil.
func (c *Collection) FindByRefnum(refnum string) *Reference {
	for _, r := range c.refs {
		if strings.EqualFold(r.FindValue(LevelAny, "REFNUM"), refnum) {
			return r
		}
	}
	return nil
}
