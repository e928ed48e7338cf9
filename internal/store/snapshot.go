package store

import (
	"encoding/json"
)

// decodeSnapshot parses a serialized collection. A missing or corrupt
// snapshot yields an empty collection: losing a bad cache is preferable
// to blocking the user from creating new entries.
func decodeSnapshot[T any](data []byte) []T {
	if len(data) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// encodeSnapshot serializes a collection for storage. Timestamps end up
// as RFC 3339 strings and absent completedAt as explicit null, so the
// round trip is lossless.
func encodeSnapshot[T any](entities []T) ([]byte, error) {
	return json.Marshal(entities)
}
