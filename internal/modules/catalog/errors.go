package catalog

import "errors"

var (
	ErrUnknownKind = errors.New("unknown catalog item kind")
	ErrDuplicateID = errors.New("catalog item id already exists")
)
