package repository

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/weatherin/cli/internal/domain"
)

type cityRepository struct {
	path string

	once   sync.Once
	cities []domain.City
	err    error
}

func newCityRepository(path string) *cityRepository {
	return &cityRepository{
		path: path,
	}
}

// load deserializes the city catalog exactly once for the process
// lifetime; every later call returns the same in-memory slice.
func (r *cityRepository) load() ([]domain.City, error) {
	r.once.Do(func() {
		raw, err := os.ReadFile(r.path)
		if err != nil {
			r.err = errors.Wrap(err, "read city catalog")
			return
		}
		if err := json.Unmarshal(raw, &r.cities); err != nil {
			r.err = errors.Wrapf(err, "parse city catalog %s", r.path)
		}
	})
	return r.cities, r.err
}

func (r *cityRepository) All(_ context.Context) ([]domain.City, error) {
	return r.load()
}

// FindByName collects every catalog entry whose name equals the query,
// ASCII case-insensitively, preserving catalog order. The query is not
// trimmed or normalized in any other way.
func (r *cityRepository) FindByName(_ context.Context, name string) ([]domain.City, error) {
	cities, err := r.load()
	if err != nil {
		return nil, err
	}

	var found []domain.City
	for _, city := range cities {
		if strings.EqualFold(city.Name, name) {
			found = append(found, city)
		}
	}
	return found, nil
}
