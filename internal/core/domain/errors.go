package domain

import "errors"

// Sentinel errors for the business rules. Services wrap them with context;
// the transport layer matches them with errors.Is to pick status codes.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrWeakPassword      = errors.New("password must be at least 6 characters")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credentials")

	ErrDuplicateTitle  = errors.New("title already in use")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrInvalidFromDate = errors.New("invalid from date")
	ErrInvalidToDate   = errors.New("invalid to date")
	ErrNoMatch         = errors.New("no todos matched the given filters")
	ErrTodoNotFound    = errors.New("todo not found")
)
