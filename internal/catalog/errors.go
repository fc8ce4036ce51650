package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrAreaNotFound indicates that the requested area has no listings.
	ErrAreaNotFound = errors.New("area not found")
	// ErrEmptyPriceList indicates a listing without any store prices.
	ErrEmptyPriceList = errors.New("cannot determine cheapest price from an empty list")
	// ErrInvalidCatalog indicates that the dataset violates a catalog invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// AreaNotFoundError carries the area identifier exactly as the caller gave it.
type AreaNotFoundError struct {
	Area string
}

func (e *AreaNotFoundError) Error() string {
	return fmt.Sprintf("Unknown area: %s", e.Area)
}

// Is makes errors.Is(err, ErrAreaNotFound) hold for any AreaNotFoundError.
func (e *AreaNotFoundError) Is(target error) bool {
	return target == ErrAreaNotFound
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}
