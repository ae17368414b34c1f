package pptx

import "errors"

var (
	ErrPlaceholderNotFound = errors.New("placeholder not found")
	ErrLayoutNotFound      = errors.New("slide layout not found")
	ErrForeignLayout       = errors.New("slide layout belongs to another deck")
)
