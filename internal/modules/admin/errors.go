package admin

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")
