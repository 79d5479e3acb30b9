package analyzer

import "errors"

// ErrInputExhausted is returned by ReadInputInteractive when the input
// stream has no more data (for example stdin reached EOF).
// The analyzer does not recover from this; callers decide whether to
// abort or retry with a different input source.
var ErrInputExhausted = errors.New("input stream exhausted")
