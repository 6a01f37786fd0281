package model

import "errors"

// Validation errors for domain models
var (
	ErrTitleRequired     = errors.New("title is required")
	ErrEventDateRequired = errors.New("event date is required")
	ErrDueDateRequired   = errors.New("due date is required")
	ErrInvalidDate       = errors.New("invalid calendar date")
)

// Upstream classification errors. The transport layer maps these onto
// distinct status codes so clients can tell a retryable condition apart
// from a broken one.
var (
	// ErrRateLimited marks an upstream provider rate limit (retryable)
	ErrRateLimited = errors.New("upstream rate limited")
	// ErrUpstream marks any other upstream model or speech failure
	ErrUpstream = errors.New("upstream service failed")
)
