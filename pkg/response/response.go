package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope for failures detected before a command runs.
// It mirrors the {code, message} shape every command response carries.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string, errs interface{}) {
	JSON(w, statusCode, Response{
		Code:    statusCode,
		Message: message,
		Errors:  errs,
	})
}

func ValidationError(w http.ResponseWriter, errs interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", errs)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Too many requests"
	}
	Error(w, http.StatusTooManyRequests, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
