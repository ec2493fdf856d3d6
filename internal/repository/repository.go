package repository

import (
	"context"

	"github.com/weatherin/cli/internal/config"
	"github.com/weatherin/cli/internal/domain"
)

type Repositories struct {
	Cities    Cities
	Countries Countries
}

// NewRepositories builds the read-only reference data stores and warms
// both of them, so a missing or corrupt catalog fails here, at startup,
// rather than in the middle of a lookup.
func NewRepositories(cfg config.Data) (*Repositories, error) {
	cities := newCityRepository(cfg.CitiesFile)
	countries := newCountryRepository(cfg.CountryCodesFile)

	if _, err := cities.load(); err != nil {
		return nil, err
	}
	if err := countries.load(); err != nil {
		return nil, err
	}

	return &Repositories{
		Cities:    cities,
		Countries: countries,
	}, nil
}

type Cities interface {
	All(ctx context.Context) ([]domain.City, error)
	FindByName(ctx context.Context, name string) ([]domain.City, error)
}

type Countries interface {
	NameByCode(ctx context.Context, code string) (string, bool, error)
	CodeByName(ctx context.Context, name string) (string, bool, error)
}
