package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
