package cms

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrResourceExists   = errors.New("resource already exists")
	ErrPermissionDenied = errors.New("permission denied")
)
