package dsf

import "errors"

// Errors returned while parsing a container. Both are fatal for the
// file being processed; neither is ever downgraded to a warning.
var (
	// ErrBadFormat indicates a malformed container: a wrong chunk
	// magic or an unexpected fixed chunk size. The wrapped message
	// names the chunk or field that failed.
	ErrBadFormat = errors.New("dsf: malformed container")

	// ErrUnsupported indicates a structurally valid container whose
	// payload this codec does not handle, such as DST compression or
	// a bit depth other than 1.
	ErrUnsupported = errors.New("dsf: unsupported format")
)
