package domain

import "errors"

// Gate and resource errors
var (
	// Authentication errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileNotFound  = errors.New("user profile not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrSessionInactive  = errors.New("session inactive")

	// Authorization errors
	ErrForbidden        = errors.New("forbidden")
	ErrInsufficientRole = errors.New("insufficient role")

	// Client context errors
	ErrClientContextRequired = errors.New("active client context required")
	ErrClientMismatch        = errors.New("client context does not match caller's client")
	ErrClientNotFound        = errors.New("client not found")
	ErrClientSuspended       = errors.New("client suspended")
	ErrGrantNotFound         = errors.New("client grant not found")

	// Resource errors
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrInquiryNotFound  = errors.New("inquiry not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrSlugTaken        = errors.New("slug already in use")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	// General errors
	ErrInternal = errors.New("internal error")
	ErrConflict = errors.New("resource conflict")
)
