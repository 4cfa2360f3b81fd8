package catalog

import "errors"

// Sentinel errors returned while building a catalog.
var (
	ErrLoadCatalog    = errors.New("load catalog failed")
	ErrInvalidModel   = errors.New("invalid business model")
	ErrDuplicateModel = errors.New("duplicate business model")
	ErrInvalidRange   = errors.New("invalid range")
)
