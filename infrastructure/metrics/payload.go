package metrics

import "github.com/veridex/council/internal/domain"

// Payload accessors for the open ParsedData document on stage records.
// Each metrics routine owns the expected shape for the stage types it
// recognizes; anything missing or of the wrong type is treated as
// absent rather than failing the computation. Numeric values arriving
// from JSON decoding are float64, but int payloads assembled in-process
// are accepted too.

// payloadString extracts a string field from a stage payload.
func payloadString(stage domain.StageRecord, key string) (string, bool) {
	if stage.ParsedData == nil {
		return "", false
	}
	v, ok := stage.ParsedData[key].(string)
	return v, ok
}

// payloadFloat extracts a numeric field from a stage payload.
func payloadFloat(stage domain.StageRecord, key string) (float64, bool) {
	if stage.ParsedData == nil {
		return 0, false
	}
	switch v := stage.ParsedData[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// payloadBool extracts a boolean field from a stage payload.
func payloadBool(stage domain.StageRecord, key string) (bool, bool) {
	if stage.ParsedData == nil {
		return false, false
	}
	v, ok := stage.ParsedData[key].(bool)
	return v, ok
}

// payloadScores extracts a map of named numeric scores from a stage
// payload. Non-numeric entries are skipped. Returns false when the key
// is missing or not a map.
func payloadScores(stage domain.StageRecord, key string) (map[string]float64, bool) {
	if stage.ParsedData == nil {
		return nil, false
	}
	switch raw := stage.ParsedData[key].(type) {
	case map[string]float64:
		return raw, true
	case map[string]any:
		scores := make(map[string]float64, len(raw))
		for dim, v := range raw {
			switch n := v.(type) {
			case float64:
				scores[dim] = n
			case int:
				scores[dim] = float64(n)
			}
		}
		return scores, true
	default:
		return nil, false
	}
}
