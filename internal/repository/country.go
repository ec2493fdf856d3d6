package repository

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// countryRepository indexes the ISO-3166-1 alpha-2 table in both
// directions. Both maps are keyed lowercase and built once at load time,
// so per-lookup work is a single map access.
type countryRepository struct {
	path string

	once       sync.Once
	nameByCode map[string]string
	codeByName map[string]string
	err        error
}

func newCountryRepository(path string) *countryRepository {
	return &countryRepository{
		path: path,
	}
}

func (r *countryRepository) load() error {
	r.once.Do(func() {
		raw, err := os.ReadFile(r.path)
		if err != nil {
			r.err = errors.Wrap(err, "read country code table")
			return
		}

		var codes map[string]string
		if err := json.Unmarshal(raw, &codes); err != nil {
			r.err = errors.Wrapf(err, "parse country code table %s", r.path)
			return
		}

		r.nameByCode = make(map[string]string, len(codes))
		r.codeByName = make(map[string]string, len(codes))
		for code, name := range codes {
			r.nameByCode[strings.ToLower(code)] = name
			r.codeByName[strings.ToLower(name)] = strings.ToLower(code)
		}
	})
	return r.err
}

// NameByCode resolves a 2-letter code to the country's full name.
func (r *countryRepository) NameByCode(_ context.Context, code string) (string, bool, error) {
	if err := r.load(); err != nil {
		return "", false, err
	}
	name, ok := r.nameByCode[strings.ToLower(code)]
	return name, ok, nil
}

// CodeByName resolves a full country name to its lowercase 2-letter code.
func (r *countryRepository) CodeByName(_ context.Context, name string) (string, bool, error) {
	if err := r.load(); err != nil {
		return "", false, err
	}
	code, ok := r.codeByName[strings.ToLower(name)]
	return code, ok, nil
}
