package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found,
// or is not visible to the requester.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a valid identity with insufficient role,
// or an actor operating on a resource they do not own.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a uniqueness violation, e.g. double-booking an
// employee or opening a second time-clock entry.
var ErrConflict = errors.New("conflict")

// ErrUpstream indicates the identity provider or another external
// collaborator could not be reached.
var ErrUpstream = errors.New("upstream error")
