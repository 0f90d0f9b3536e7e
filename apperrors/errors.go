// Package apperrors holds the closed set of error kinds the API can surface.
// Anything that is not an *Error is treated as an internal fault by the
// centralized responder and never leaks detail to the client.
package apperrors

import (
	"net/http"
	"strings"
)

// Kind tags an Error with its failure category.
type Kind int

const (
	Validation Kind = iota
	BadRequest
	NotFound
	NotAuthenticated
)

// FieldViolation points a validation failure at the request field that caused it.
type FieldViolation struct {
	Field   string
	Message string
}

// Error is the application error type. Services and controllers construct one
// at the point of detection and let it propagate to the centralized responder.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldViolation
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, v := range e.Fields {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// HTTPStatus maps the error kind onto the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case NotAuthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// Item is one entry of the "errors" array in an error response body.
type Item struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Body is the response body shared by every failed request.
type Body struct {
	Errors []Item `json:"errors"`
}

// Wire renders the error as its response body: one entry per field violation,
// or a single entry carrying the message when there are none.
func (e *Error) Wire() Body {
	if len(e.Fields) == 0 {
		return Body{Errors: []Item{{Message: e.Message}}}
	}
	items := make([]Item, 0, len(e.Fields))
	for _, v := range e.Fields {
		items = append(items, Item{Message: v.Message, Field: v.Field})
	}
	return Body{Errors: items}
}

// Internal is the fixed body for unclassified failures.
func Internal() Body {
	return Body{Errors: []Item{{Message: "internal server error"}}}
}

func NewValidation(fields ...FieldViolation) *Error {
	return &Error{Kind: Validation, Message: "request validation failed", Fields: fields}
}

func NewBadRequest(message string) *Error {
	return &Error{Kind: BadRequest, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewNotAuthenticated(message string) *Error {
	return &Error{Kind: NotAuthenticated, Message: message}
}
