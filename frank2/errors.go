package frank2

import "errors"

// Errors
var (
	ErrEmptyLine       = errors.New("empty graph string")
	ErrBadGraph6Header = errors.New("invalid start of graph6 string")
	ErrMissingNewline  = errors.New("graph6 line must end with a newline")
	ErrGraph6TooLarge  = errors.New("graph6 vertex count beyond supported range")
	ErrTooManyVertices = errors.New("vertex count exceeds bit-set width")
	ErrTooManyEdges    = errors.New("edge count exceeds bit-set width")
	ErrNotCubic        = errors.New("graph is not cubic")
	ErrBadExpr         = errors.New("bad graph expression")
	ErrBadVtxID        = errors.New("bad graph vertex ID")
	ErrBadShardSpec    = errors.New("invalid res/mod pair")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrCatalogVersion  = errors.New("catalog version is incompatible")
	ErrCatalogReadOnly = errors.New("catalog opened read-only")
)
