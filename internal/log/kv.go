package log

import (
	"maps"
	"slices"
)

// Namespaces used across empdb logs.
const (
	NsCLI      = "cli"
	NsDatabase = "database"
)

// KV is a set of key-value pairs attached to a log entry.
type KV map[string]any

// kvToArgs flattens the first KV into slog arguments sorted by key.
// Any KV after the first one is ignored.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	kv := keyVals[0]
	for _, k := range slices.Sorted(maps.Keys(kv)) {
		args = append(args, k, kv[k])
	}

	return args
}

// kvToArgsNs works like kvToArgs but prepends the namespace under the
// "ns" key.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
