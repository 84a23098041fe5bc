package wfc

import "errors"

var (
	// ErrContradiction is returned when propagation empties a cell's
	// candidate set. The field is left partially updated and must be
	// reset before further use.
	ErrContradiction = errors.New("wfc: contradiction, cell has no remaining tiles")

	ErrInvalidTileSize = errors.New("wfc: tile size must be at least 1")
	ErrEmptyGrid       = errors.New("wfc: source grid has no pixels")
	ErrInvalidField    = errors.New("wfc: field dimensions must be positive")
	ErrTileNotPossible = errors.New("wfc: chosen tile is not in the cell's candidate set")
	ErrTooManyRestarts = errors.New("wfc: restart limit exceeded without a consistent result")
)
