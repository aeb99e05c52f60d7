package errors

import "fmt"

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not active yet")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("authorization header has invalid format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Common
	ErrNotFound = fmt.Errorf("record not found")

	// Reservation form sessions
	ErrFormSessionNotFound = fmt.Errorf("reservation form session not found or expired")

	// Assignment workflow
	ErrChecklistIncomplete = fmt.Errorf("not all checklist items are completed")
	ErrNoPendingChecklist  = fmt.Errorf("no pending checklist save recorded for this reservation")
)
