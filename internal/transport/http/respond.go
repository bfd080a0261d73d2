package httptransport

import (
	"encoding/json"
	"net/http"

	dErrors "salaire/pkg/domain-errors"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorResponse is the JSON error envelope. Message carries the user-facing
// text; code is machine-readable.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError centralizes domain error translation to HTTP responses so every
// handler produces the same envelope.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	writeJSON(w, statusFor(code), errorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
