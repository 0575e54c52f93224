package adapter

import "errors"

// ErrUpstream marks any failure of an external collaborator: connection
// errors, timeouts, and non-2xx responses alike.
var ErrUpstream = errors.New("upstream service failure")
