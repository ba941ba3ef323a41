package slideshow

import "errors"

var (
	// ErrInvalidConfiguration is returned by New for an empty slide list or
	// unusable dwell/tick durations.
	ErrInvalidConfiguration = errors.New("slideshow: invalid configuration")

	// ErrIndexOutOfRange is returned by GoTo when the index is not a valid slide position.
	ErrIndexOutOfRange = errors.New("slideshow: index out of range")
)
