package profile

import "errors"

var (
	ErrUnknownAdminAction = errors.New("unknown admin action")
	ErrEducationNotFound  = errors.New("education record not found")
)
