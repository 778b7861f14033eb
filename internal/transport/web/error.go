package web

import "errors"

var (
	ErrPanic              = errors.New("panic in handler")
	ErrUnsupportedContent = errors.New("unsupported content type")
)
