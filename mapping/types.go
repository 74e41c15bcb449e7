package mapping

import "strings"

// TableKind classifies a SQL table name into the Redis data structure
// its rows live in. Classification is a total function of the name:
// every name maps to exactly one kind, and the default is String.
type TableKind int

const (
	String TableKind = iota
	Hash
	List
	Set
	SortedSet
)

// Suffix conventions recognized on table names.
// "leaderboard__zset" is a sorted set, "users" is a plain string key.
const (
	HashSuffix      = "__hash"
	ListSuffix      = "__list"
	SetSuffix       = "__set"
	SortedSetSuffix = "__zset"
)

// suffixKinds maps each recognized suffix to its kind. The suffixes
// are mutually exclusive, so check order does not matter.
var suffixKinds = []struct {
	suffix string
	kind   TableKind
}{
	{HashSuffix, Hash},
	{ListSuffix, List},
	{SortedSetSuffix, SortedSet},
	{SetSuffix, Set},
}

// Kind returns the TableKind for a table name. This is the single
// source of truth for table classification; matchers and the direct
// command generator must not apply any other heuristic.
func Kind(tableName string) TableKind {
	for _, sk := range suffixKinds {
		if strings.HasSuffix(tableName, sk.suffix) {
			return sk.kind
		}
	}
	return String
}

// String returns the human-readable kind name used in CLI output.
func (k TableKind) String() string {
	switch k {
	case Hash:
		return "hash"
	case List:
		return "list"
	case Set:
		return "set"
	case SortedSet:
		return "zset"
	default:
		return "string"
	}
}
