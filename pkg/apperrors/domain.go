package apperrors

import "net/http"

// Predefined errors for the auth domain. Registration and login failures use
// fixed messages so they leak nothing about which part of the credential
// pair was wrong.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists maps to 400: a duplicate registration is rejected as
// bad input, the same as any other invalid register payload.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

var ErrNoToken = New(
	CodeUnauthorized,
	"auth",
	"Access denied. No token provided.",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers every verification failure: bad signature, garbage
// payload, expiry, and a subject that no longer exists. Collapsing them is
// deliberate; the concrete reason is only logged server-side.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)
