package httpapi

import (
	"encoding/json"
	"net/http"
)

// Response messages mirrored from the original web UI contract.
const (
	msgUserCreated     = "User created successfully"
	msgUpdated         = "Password updated successfully"
	msgDeleted         = "Password deleted successfully"
	msgMissingFields   = "Missing required fields"
	msgShortPassword   = "Password must be at least 6 characters"
	msgUserExists      = "User already exists"
	msgNoFields        = "No fields to update"
	msgNotFound        = "Password not found"
	msgUnauthorized    = "Unauthorized"
	msgInternal        = "Internal server error"
	msgInvalidBody     = "Invalid request body"
	msgLoginFailed     = "Invalid email or password"
	msgLoginSuccessful = "Login successful"
	msgLoggedOut       = "Logged out"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response in the {"error": ...} shape.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
