package llm_test

import "encoding/json"

func jsonMarshal(v any) (string, error) {
	data, err := json.Marshal(v)
	return string(data), err
}
