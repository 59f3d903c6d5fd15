package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// envelope is the response shape every endpoint uses:
// {success, data?, message?, error?}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeCreated(w http.ResponseWriter, data interface{}, message string) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data, Message: message})
}

// writeError maps the domain error taxonomy onto transport status codes.
// Not-found keeps the bare message shape, everything else carries the
// structured error body with diagnostic details.
func writeError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.NewStoreError("an unexpected error occurred", err)
	}

	var httpStatus int
	switch de.Code {
	case domain.CodeValidation, domain.CodeConflict:
		httpStatus = http.StatusBadRequest
	case domain.CodeNotFound:
		httpStatus = http.StatusNotFound
	default:
		httpStatus = http.StatusInternalServerError
	}

	if de.Code == domain.CodeNotFound {
		writeJSON(w, httpStatus, envelope{Success: false, Message: de.Message})
		return
	}
	writeJSON(w, httpStatus, envelope{
		Success: false,
		Error: &errorBody{
			Code:    string(de.Code),
			Message: de.Message,
			Details: de.Details,
		},
	})
}
