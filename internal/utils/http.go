package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data as JSON and writes it with the given status
// code. The Content-Type header is set before the status is written. On
// marshal failure it responds with 500 and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("marshal response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
