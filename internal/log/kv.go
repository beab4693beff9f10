package log

import "sort"

// KV is a map of key-value pairs attached to a log message.
type KV map[string]any

// kvToArgs flattens KV maps into the alternating key-value argument list
// slog expects. Keys within each map are sorted for stable output.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	for _, kv := range keyVals {
		keys := make([]string, 0, len(kv))
		for key := range kv {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			args = append(args, key, kv[key])
		}
	}
	return args
}
