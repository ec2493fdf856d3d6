package service

import (
	"context"
	"strings"

	"github.com/weatherin/cli/internal/domain"
	"github.com/weatherin/cli/internal/repository"
	"github.com/weatherin/cli/pkg/prompt"
)

// cityResolver turns a human-provided city name into the catalog's
// numeric identifier. It is a linear decision tree with four terminal
// outcomes: a resolved id, or one of the three typed failures in the
// domain package.
type cityResolver struct {
	cities    repository.Cities
	countries repository.Countries
	prompt    prompt.Prompter
}

func newCityResolver(cities repository.Cities, countries repository.Countries, prompt prompt.Prompter) *cityResolver {
	return &cityResolver{
		cities:    cities,
		countries: countries,
		prompt:    prompt,
	}
}

func (s *cityResolver) Resolve(ctx context.Context, city string) (int, error) {
	matches, err := s.cities.FindByName(ctx, city)
	if err != nil {
		return 0, err
	}

	if len(matches) == 0 {
		return 0, &domain.CityNotFoundError{City: city}
	}
	if len(matches) == 1 {
		return matches[0].ID, nil
	}

	if !spansMultipleCountries(matches) {
		// Same city listed more than once under one jurisdiction; the
		// ambiguity is spurious and the first catalog entry wins.
		return matches[0].ID, nil
	}

	supplied, err := s.prompt.Country(city)
	if err != nil {
		return 0, err
	}

	code, err := s.canonicalCode(ctx, supplied)
	if err != nil {
		return 0, err
	}

	for _, match := range matches {
		if strings.EqualFold(match.Country, code) {
			return match.ID, nil
		}
	}
	return 0, &domain.CityNotFoundInCountryError{City: city, Country: supplied}
}

// canonicalCode maps the operator's country input to a lowercase
// 2-letter code. Anything of length <= 2 is presumed to already be a
// code, longer input is presumed to be a full name; the threshold is a
// heuristic, not format validation, so even 1-character garbage is
// checked against the code table.
func (s *cityResolver) canonicalCode(ctx context.Context, supplied string) (string, error) {
	if len(supplied) <= 2 {
		_, ok, err := s.countries.NameByCode(ctx, supplied)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &domain.CountryNotRecognizedError{Country: supplied}
		}
		return strings.ToLower(supplied), nil
	}

	code, ok, err := s.countries.CodeByName(ctx, supplied)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &domain.CountryNotRecognizedError{Country: supplied}
	}
	return code, nil
}

func spansMultipleCountries(matches []domain.City) bool {
	first := matches[0].Country
	for _, match := range matches[1:] {
		if !strings.EqualFold(match.Country, first) {
			return true
		}
	}
	return false
}
