//go:build !((linux || darwin || windows) && (amd64 || arm64))

package recipe

import "encoding/json"

// stdAPI is used where sonic has no JIT backend.
type stdAPI struct{}

var api stdAPI

func (stdAPI) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (stdAPI) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}
