package service

import (
	"context"

	"github.com/weatherin/cli/internal/domain"
	"github.com/weatherin/cli/internal/repository"
	"github.com/weatherin/cli/internal/service/openweather"
	"github.com/weatherin/cli/pkg/prompt"
)

type Services struct {
	Resolver Resolver
	Weather  Weather
}

type Deps struct {
	Repos  *repository.Repositories
	Client WeatherAPI
	Prompt prompt.Prompter
}

func NewServices(deps Deps) *Services {
	resolver := newCityResolver(deps.Repos.Cities, deps.Repos.Countries, deps.Prompt)

	return &Services{
		Resolver: resolver,
		Weather:  newWeatherService(resolver, deps.Client),
	}
}

type Resolver interface {
	Resolve(ctx context.Context, city string) (int, error)
}

type Weather interface {
	Current(ctx context.Context, city, units string) (*domain.Weather, error)
}

// WeatherAPI is the remote weather service as the application sees it;
// satisfied by *openweather.Client.
type WeatherAPI interface {
	CurrentByID(ctx context.Context, cityID int, units string) (*openweather.Current, error)
}
