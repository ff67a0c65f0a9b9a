package destination

import "errors"

var (
	ErrNotFound        = errors.New("destination not found")
	ErrInvalidCategory = errors.New("invalid destination category")
)
