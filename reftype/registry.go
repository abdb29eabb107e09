package reftype

// tables holds the type/tag translation table each input format registers
// during package init, keyed by FormatID. A format package that never
// registers a table can still be a writer-only format (e.g. ADSABSOUT).
var tables = map[FormatID]*Table{}

// RegisterTable attaches a reftype table to a FormatID. Call from a format
// package's init().
func RegisterTable(id FormatID, t *Table) {
	tables[id] = t
}

// TableFor returns the table registered for id, or (nil, false).
func TableFor(id FormatID) (*Table, bool) {
	t, ok := tables[id]
	return t, ok
}
