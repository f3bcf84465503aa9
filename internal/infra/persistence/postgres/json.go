package postgres

import "encoding/json"

// marshalJSONB serializes a map for a JSONB column, mapping empty input
// to NULL so the column stays queryable with IS NULL.
func marshalJSONB(data map[string]any) []byte {
	if len(data) == 0 {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	return raw
}

// unmarshalJSONB deserializes a JSONB column, tolerating NULL and
// malformed content by returning nil.
func unmarshalJSONB(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}

	return data
}
