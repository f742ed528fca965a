package cover

import "errors"

var ErrCoverNotFound = errors.New("cover not found")
