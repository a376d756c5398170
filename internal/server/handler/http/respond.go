package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes a {"message": ...} JSON body with the given status code.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// decodeBody decodes the request body into dst. On a malformed body it
// writes a 400 response naming the offending field where possible and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
			writeMessage(w, http.StatusBadRequest, "Invalid value for field '"+typeErr.Field+"'")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
