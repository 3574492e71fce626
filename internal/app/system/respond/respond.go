// Package respond writes the JSON envelopes the site's page scripts
// consume.
package respond

import (
	"encoding/json"
	"net/http"
)

// Body is the standard API response envelope.
type Body struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK sends 200 with data.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Body{Success: true, Data: data})
}

// Created sends 201 with data.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, Body{Success: true, Data: data})
}

// NoContent sends 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends status with an error message.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, Body{Success: false, Error: msg})
}

// BadRequest sends 400.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// Unauthorized sends 401.
func Unauthorized(w http.ResponseWriter, msg string) {
	Error(w, http.StatusUnauthorized, msg)
}

// Forbidden sends 403.
func Forbidden(w http.ResponseWriter, msg string) {
	Error(w, http.StatusForbidden, msg)
}

// NotFound sends 404.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// Internal sends 500.
func Internal(w http.ResponseWriter, msg string) {
	Error(w, http.StatusInternalServerError, msg)
}
