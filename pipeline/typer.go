package pipeline

import "github.com/osu-libraries/bibconv/reftype"

// determineType looks up a reference's raw type string against its
// format's reftype table, returning the format's default type when the raw
// string is empty or unrecognised.
func determineType(table *reftype.Table, rawType string) reftype.Reftype {
	return table.TypeOf(rawType)
}
