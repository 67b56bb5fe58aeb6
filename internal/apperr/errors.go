package apperr

import "errors"

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// Conflict indicates a state conflict, e.g. mutating a frozen order (HTTP 409).
var Conflict = errors.New("conflict")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// Unauthorized indicates a missing or rejected bearer token (HTTP 401).
var Unauthorized = errors.New("unauthorized")
