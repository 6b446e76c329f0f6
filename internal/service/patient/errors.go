package patient

import "errors"

// ErrNotFound covers both a missing record and a record owned by someone
// else; callers cannot distinguish the two.
var ErrNotFound = errors.New("patient not found")
