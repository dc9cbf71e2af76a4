package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// A record owned by another user is reported with this same error, so callers
// cannot tell "absent" apart from "not yours".
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
