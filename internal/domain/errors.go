package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

// CityNotFoundError is returned when no catalog entry matches the queried
// city name. City holds the query exactly as the operator typed it.
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("the city of %s has not been found", e.City)
}

func (e *CityNotFoundError) Is(target error) bool { return target == ErrNotFound }

// CountryNotRecognizedError is returned when disambiguation was required
// and the supplied country matched neither a known 2-letter code nor a
// known full name. Country holds the literal supplied string.
type CountryNotRecognizedError struct {
	Country string
}

func (e *CountryNotRecognizedError) Error() string {
	return fmt.Sprintf("Country %s not found", e.Country)
}

func (e *CountryNotRecognizedError) Is(target error) bool { return target == ErrNotFound }

// CityNotFoundInCountryError is returned when the supplied country was
// recognized but no catalog entry pairs the queried city with it.
type CityNotFoundInCountryError struct {
	City    string
	Country string
}

func (e *CityNotFoundInCountryError) Error() string {
	return fmt.Sprintf("The city of %s has not been found in the country of %s", e.City, e.Country)
}

func (e *CityNotFoundInCountryError) Is(target error) bool { return target == ErrNotFound }
