package world

import "errors"

var (
	// ErrCodeSpaceExhausted is returned when the allocator could not find a
	// free country code within its attempt budget.
	ErrCodeSpaceExhausted = errors.New("error.country.code_space_exhausted")

	ErrCityNotFound    = errors.New("error.city.not_found")
	ErrCountryNotFound = errors.New("error.country.not_found")

	// ErrDuplicateKey is the store-level signal that an insert hit a unique
	// constraint. The upsert path treats it as a lost race, not a failure.
	ErrDuplicateKey = errors.New("error.store.duplicate_key")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return "error.validation." + e.Field + ".required"
}
