package extractors

// Info records are the structured intermediates consumed by the direct
// command generator. They never reach the template path.

// StringGetInfo describes a plain string-key read.
type StringGetInfo struct {
	Key string
}

// HashGetAllInfo describes a whole-hash read.
type HashGetAllInfo struct {
	Key string
}

// HashGetInfo describes a single-field hash read.
type HashGetInfo struct {
	Key   string
	Field string
}

// HashMultiGetInfo describes a multi-field hash read. Fields keep
// projection order.
type HashMultiGetInfo struct {
	Key    string
	Fields []string
}

// ListGetAllInfo describes a whole-list read.
type ListGetAllInfo struct {
	Key string
}

// ListIndexInfo describes a single-element list read.
type ListIndexInfo struct {
	Key   string
	Index int64
}

// ListGetRangeInfo describes a prefix read of a list. Limit is the SQL
// LIMIT count; the generated stop index is Limit-1, so LIMIT 0 yields
// stop -1.
type ListGetRangeInfo struct {
	Key   string
	Limit int64
}

// SetGetAllInfo describes a whole-set read.
type SetGetAllInfo struct {
	Key string
}

// SetMemberInfo describes a set membership test.
type SetMemberInfo struct {
	Key    string
	Member string
}

// ZSetGetAllInfo describes a whole-sorted-set read.
type ZSetGetAllInfo struct {
	Key string
}

// ZSetScoreRangeInfo describes a score-bounded sorted-set read.
type ZSetScoreRangeInfo struct {
	Key   string
	Range ScoreRange
}

// ZSetGetReversedInfo describes a descending sorted-set read.
type ZSetGetReversedInfo struct {
	Key   string
	Range ScoreRange
}

// FieldValue is one column/value pair in statement order. Positional
// command arguments are built from slices of these, never from maps,
// so output order is deterministic.
type FieldValue struct {
	Name  string
	Value string
}

// InsertCommandInfo describes an INSERT reduced to its key and ordered
// non-key fields.
type InsertCommandInfo struct {
	Table  string
	Key    string
	Fields []FieldValue
}

// DeleteCommandInfo describes a DELETE reduced to its key plus the
// optional member/index selectors that narrow it below whole-key
// removal.
type DeleteCommandInfo struct {
	Table     string
	Key       string
	Member    string
	HasMember bool
	Index     int64
	HasIndex  bool
}
