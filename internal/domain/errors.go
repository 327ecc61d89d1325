package domain

import "errors"

// ErrNotFound is returned by read helpers when the requested location or
// visit does not exist. Store mutations deliberately never return it — a
// mutation against an unknown id is a silent no-op — but the HTTP layer uses
// it to map missing resources to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails structural validation
// (e.g. empty name, enum label outside the declared set).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
