package req

import (
	"encoding/json"
	"io"
)

// Decode - decodes a JSON request body into T, rejecting unknown fields.
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&payload)
	if err != nil {
		return payload, err
	}

	return payload, nil
}
