package document

import "errors"

var (
	// ErrInvalidJSON indicates the input is not parseable JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject indicates the top-level JSON value is not an object.
	ErrNotObject = errors.New("document must be a JSON object")
)
