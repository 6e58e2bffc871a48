package model

import "errors"

var (
	// ErrUnauthenticated - missing, partial or unverifiable credentials. Fail closed.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMissingOrganization - authenticated user without an active organization context.
	ErrMissingOrganization = errors.New("missing organization context")
	// ErrInvalidCredentials - unknown login or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrExpiredOrInvalidRefreshToken - refresh token expired, revoked or never issued.
	ErrExpiredOrInvalidRefreshToken = errors.New("expired or invalid refresh token")

	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotMember     = errors.New("not a member of organization")
	ErrNotReporter   = errors.New("not the issue reporter")
	ErrAlreadyVoted  = errors.New("already voted for issue")
	ErrInvalidOTP    = errors.New("invalid or expired otp")
)
