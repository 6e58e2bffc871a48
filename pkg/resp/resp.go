package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse - writes data as a JSON body with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}

// WriteError - writes an error payload in the shared {"error": ...} shape.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, map[string]string{"error": message})
}
