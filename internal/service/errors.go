package service

import "errors"

var (
	// ErrInvalidInput is returned when a request misses required fields
	ErrInvalidInput = errors.New("invalid input")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash
	ErrPasswordTooLong = errors.New("password longer than 72 bytes")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned for a malformed, forged or expired session token
	ErrInvalidToken = errors.New("invalid session token")
)
