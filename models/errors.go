package models

import "errors"

var (
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidCategoryID   = errors.New("invalid category ID")
	ErrInvalidLanguage     = errors.New("invalid language")

	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin with this email already exists")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	// ErrStore marks failures of the backing key-value tree.
	ErrStore = errors.New("store failure")
	// ErrUpload marks failures of the blob store.
	ErrUpload = errors.New("upload failure")

	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
)
