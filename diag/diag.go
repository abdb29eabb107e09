// Package diag collects non-fatal format/structure warnings raised while
// reading or converting a batch of references, so a single malformed
// reference never aborts the whole run.
package diag

import "fmt"

// Record is one diagnostic: which file/reference/tag it concerns and a
// human-readable message.
type Record struct {
	Filename string
	RefIndex int
	Tag      string
	Message  string
}

func (r Record) String() string {
	where := r.Filename
	if where == "" {
		where = "<input>"
	}
	if r.Tag != "" {
		return fmt.Sprintf("%s: reference %d: %s: %s", where, r.RefIndex, r.Tag, r.Message)
	}
	return fmt.Sprintf("%s: reference %d: %s", where, r.RefIndex, r.Message)
}

// Sink accumulates diagnostics. The zero value is ready to use.
type Sink struct {
	Records []Record
}

// Warnf appends a formatted warning.
func (s *Sink) Warnf(filename string, refIndex int, tag, format string, args ...any) {
	s.Records = append(s.Records, Record{
		Filename: filename,
		RefIndex: refIndex,
		Tag:      tag,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Len reports how many diagnostics have been collected.
func (s *Sink) Len() int { return len(s.Records) }
