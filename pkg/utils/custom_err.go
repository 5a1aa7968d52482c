package utils

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrMissingAuthHeader    = errors.New("missing or invalid Authorization header")
	ErrInvalidIdentityToken = errors.New("invalid or expired Google ID token")
	ErrFileNotFound         = errors.New("file not found")
	ErrNoFiles              = errors.New("no files stored")
	ErrDuplicateVersion     = errors.New("duplicate browser and version")
	ErrDatabaseError        = errors.New("database error")
)
