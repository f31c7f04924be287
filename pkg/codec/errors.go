package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the cleaned bit string is empty or its
// length is not a multiple of 8.
var ErrInvalidInput = errors.New("bit input must contain 0/1 characters and be divisible by 8")

// ParseError reports an 8-digit chunk that is not a binary number.
type ParseError struct {
	Chunk string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse bit chunk: %s", e.Chunk)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
