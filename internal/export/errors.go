package export

import "errors"

var (
	// ErrNotJSONFile indicates an upload that is neither a .json nor a .zip file.
	ErrNotJSONFile = errors.New("expected a .json or .zip file")

	// ErrUnexpectedName indicates a .json upload not named like an export.
	ErrUnexpectedName = errors.New("expected a file named like " + FilePrefix + "*.json")

	// ErrNoDocumentInArchive indicates a ZIP without a wizard JSON document.
	ErrNoDocumentInArchive = errors.New("archive contains no " + FilePrefix + "*.json document")
)
