package chrono

import "errors"

// ErrUnsupportedRepresentation indicates that the requested value cannot be
// represented, or that the requested value is not present. Merge wraps it
// when asked to combine two TimeReps that ISO 8601 has no merge rule for.
var ErrUnsupportedRepresentation = errors.ErrUnsupported
