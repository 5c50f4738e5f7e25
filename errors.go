package probe

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyImage     = errors.New("image file is empty")
	ErrInvalidDataURI = errors.New("invalid data uri")
	ErrNoContent      = errors.New("response has no text content")
)

// FileReadError reports that the sample image could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read image %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// EncodingError reports a failure while turning the image into a request.
// Stage names the step: "encode", "request" or "prepare".
type EncodingError struct {
	Stage string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// RemoteCallError reports a failed call to the generation API. StatusCode is
// zero when no HTTP status is known.
type RemoteCallError struct {
	Provider   Provider
	Model      string
	StatusCode int
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Provider, e.Model, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Model, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
