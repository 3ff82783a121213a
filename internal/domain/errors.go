package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrImageLimitExceeded = errors.New("image limit exceeded")
	ErrNotDecodable       = errors.New("input is not a decodable raster")
	ErrUnsupportedInput   = errors.New("unsupported input shape")
)

// ValidationError is the only error the upload pipeline surfaces to its
// callers. It carries every violated constraint so the caller can show a
// complete diagnostic at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("image validation failed: %s", strings.Join(e.Violations, "; "))
}

// BatchItemError marks a single rejected item inside a batch upload.
type BatchItemError struct {
	Index int
	Err   error
}

func (e *BatchItemError) Error() string {
	return fmt.Sprintf("image %d: %v", e.Index, e.Err)
}

func (e *BatchItemError) Unwrap() error {
	return e.Err
}
