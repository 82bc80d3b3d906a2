package extractor

import "errors"

// Document-fatal conditions. Anything per-record stays out of the error
// domain and is reported on the statement instead.
var (
	// ErrUnreadableDocument means no extraction method produced readable
	// text, typically a scanned or image-only PDF.
	ErrUnreadableDocument = errors.New("document could not be read as text")
	// ErrEmptyDocument means the file opened fine but contains no content.
	ErrEmptyDocument = errors.New("document contains no content")
)
