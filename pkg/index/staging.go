package index

import (
	"encoding/json"

	"github.com/kurt-labs/kurt/pkg/llm"
)

// The staging tables store extraction outputs as generic JSON; these helpers
// move between that shape and the typed extraction structs.

func jsonRoundTrip(v any) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeList[T any](raw []map[string]interface{}) []T {
	out := make([]T, 0, len(raw))
	for _, m := range raw {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

// DecodeEntities converts staged entity JSON back into typed mentions.
func DecodeEntities(raw []map[string]interface{}) []llm.ExtractedEntity {
	return decodeList[llm.ExtractedEntity](raw)
}

// DecodeClaims converts staged claim JSON back into typed claims.
func DecodeClaims(raw []map[string]interface{}) []llm.ExtractedClaim {
	return decodeList[llm.ExtractedClaim](raw)
}
