package quill

import (
	"errors"
	"fmt"
)

const (
	CategoryValidate = "validate"
	CategoryEncode   = "encode"
	CategoryDecode   = "decode"
)

var ErrInvalidEncoding = errors.New("quill: invalid utf-8 in field")

// SerializationError is returned by every failing Serializer operation.
type SerializationError struct {
	Category    string
	message     string
	previousErr error
}

func newSerializationError(category string, message string, previousErr error) *SerializationError {
	return &SerializationError{
		Category:    category,
		message:     message,
		previousErr: previousErr,
	}
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.message, e.previousErr.Error())
}

func (e SerializationError) Unwrap() error {
	return e.previousErr
}
