package finance

import "errors"

var (
	ErrReloadInFlight    = errors.New("a list reload is already in flight")
	ErrUnknownUploadType = errors.New("unknown upload type")
)
