// Package handlers provides response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers
// and hosting shells.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/JaimeStill/function-api/pkg/router"
)

// ContentTypeJSON is the Content-Type set on every JSON response.
const ContentTypeJSON = "application/json; charset=utf-8"

// Opaque error messages written to response bodies.
const (
	MessageNotFound       = "not found"
	MessageInternalError  = "internal server error"
	MessageEntityTooLarge = "request entity too large"
)

// JSON creates a response with the given status and data encoded as compact JSON.
func JSON(status int, data any) (*router.Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	resp := router.NewResponse(status, body)
	resp.Header.Set("Content-Type", ContentTypeJSON)
	return resp, nil
}

// Error creates a JSON error response with body {"error": message}.
func Error(status int, message string) *router.Response {
	body, _ := json.Marshal(map[string]string{"error": message})
	resp := router.NewResponse(status, body)
	resp.Header.Set("Content-Type", ContentTypeJSON)
	return resp
}

// ErrorResponse maps a dispatch error to an opaque error response.
// Unmatched requests become 404; every other failure becomes 500.
func ErrorResponse(err error) *router.Response {
	if router.IsNotFound(err) {
		return Error(http.StatusNotFound, MessageNotFound)
	}
	return Error(http.StatusInternalServerError, MessageInternalError)
}

// Write copies resp onto a net/http response writer.
func Write(w http.ResponseWriter, resp *router.Response) {
	header := w.Header()
	for key, values := range resp.Header {
		header[key] = append([]string(nil), values...)
	}
	header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}
