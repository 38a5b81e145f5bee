package store

import "encoding/json"

// applyPatch merges a partial update into a record by round-tripping through
// the record's JSON form, so patch keys follow the same camelCase field names
// the documents use everywhere else.
func applyPatch[T any](record T, patch Patch) (T, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return record, err
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return record, err
	}
	for k, v := range patch {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return record, err
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return record, err
	}
	return out, nil
}
