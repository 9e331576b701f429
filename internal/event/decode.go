package event

import "encoding/json"

// DecodePayload returns input as T, falling back to a JSON round-trip for
// payloads that were serialized (dead-letter replay, SSE clients).
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
