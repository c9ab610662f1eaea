package utils

import (
	"encoding/json"
	"net/http"
)

type M map[string]any

// JSON wraps the payload in the {"data": ...} envelope the client expects.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	RespondWithJSON(w, statusCode, M{"data": data})
}

// Error writes the {"error": {"message": ...}} envelope.
func Error(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, M{"error": M{"message": message}})
}

// RespondWithJSON writes any payload as JSON.
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
