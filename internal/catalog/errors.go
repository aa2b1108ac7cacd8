package catalog

import "errors"

// ErrCatalogRead indicates a catalog file exists but could not be read or parsed.
var ErrCatalogRead = errors.New("catalog read failed")
