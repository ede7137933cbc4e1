package service

import "errors"

var (
	ErrSportCategoryNotFound = errors.New("sport category not found")
	ErrRouteIDRequired       = errors.New("Route ID is required for this event.")
	ErrRouteNotFound         = errors.New("route not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrInvalidDateFilter     = errors.New("invalid date filter")
	ErrInvalidPartOfDay      = errors.New("invalid part of day")
)

// IsValidationError reports whether err is one of the creation/filter errors
// that the HTTP layer maps to 400.
func IsValidationError(err error) bool {
	for _, candidate := range []error{
		ErrSportCategoryNotFound,
		ErrRouteIDRequired,
		ErrRouteNotFound,
		ErrLocationNotFound,
		ErrInvalidDateFilter,
		ErrInvalidPartOfDay,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
