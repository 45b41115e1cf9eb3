// Package response writes the JSON bodies this API speaks.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/priyankmodi/storefront/pkg/apperr"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends a 200 response with v as the body.
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Created sends a 201 response with v as the body.
func Created(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusCreated, v)
}

// Message sends a 200 {"message": ...} body.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, map[string]string{"message": msg})
}

// Error sends an {"error": ...} body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"error": message})
}

// Err maps a service error onto its taxonomy status and client message.
func Err(w http.ResponseWriter, err error) {
	Error(w, apperr.Status(err), apperr.Message(err))
}

// ValidationError sends a 422 with a field → message map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "validation failed",
		"fields": errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "forbidden")
}
