package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown layer value, out-of-range coordinate).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidReference is returned when an insert references a trip or path
// that does not exist. The database reports it as a foreign key violation;
// handlers should map this to HTTP 422 with a specific message.
var ErrInvalidReference = errors.New("referenced resource does not exist")

// ErrDecode is returned when stored geography fails to decode into a
// well-formed Coordinate. It means the stored row is corrupt or unexpectedly
// shaped; a server-side failure, never a client error and never silently
// dropped. Handlers should map this to HTTP 500 with a generic message.
var ErrDecode = errors.New("stored geography decode error")
