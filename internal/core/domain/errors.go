package domain

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin already exists")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrInvalidCategory   = errors.New("category name is required")

	ErrPostNotFound      = errors.New("post not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrAccountNotFound = errors.New("user not found")
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
