package server

import (
	"encoding/json"
	"net/http"
)

// ReturnJSON writes resp as a JSON body with the given status code.
func ReturnJSON(w http.ResponseWriter, resp interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// Headers are already out; an encode failure here has no channel back
	// to the client.
	_ = json.NewEncoder(w).Encode(resp)
}

// ReturnErrorJSON writes a {"error": msg} body with the given status code.
func ReturnErrorJSON(w http.ResponseWriter, msg string, statusCode int) {
	ReturnJSON(w, map[string]interface{}{"error": msg}, statusCode)
}
