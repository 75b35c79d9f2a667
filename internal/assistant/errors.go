package assistant

import "errors"

var ErrEmptyMessage = errors.New("no message provided")
