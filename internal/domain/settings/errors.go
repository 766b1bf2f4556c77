package settings

import "errors"

var (
	ErrItemNotFound    = errors.New("general settings item not found")
	ErrUnknownResource = errors.New("unknown general settings resource")
)
