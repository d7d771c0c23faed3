package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dom/rift-companion/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service errors onto status codes: unknown IDs are
// 404, rejected input is 400 and anything else is logged and reported as 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case service.NotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case service.ValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
