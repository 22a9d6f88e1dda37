package entity

import "errors"

// Domain errors for users, syllabus content and test results.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMasterProtected    = errors.New("master account cannot be removed")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrInvalidTopicTitle  = errors.New("invalid topic title")
	ErrResultNotFound     = errors.New("test result not found")
	ErrBackupDisabled     = errors.New("backup store is not configured")
)
