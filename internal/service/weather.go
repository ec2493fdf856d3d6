package service

import (
	"context"
	"time"

	"github.com/weatherin/cli/internal/domain"
	"github.com/weatherin/cli/internal/service/openweather"
	"github.com/weatherin/cli/pkg/logger"

	"go.uber.org/zap"
)

type weatherService struct {
	resolver Resolver
	client   WeatherAPI
}

func newWeatherService(resolver Resolver, client WeatherAPI) *weatherService {
	return &weatherService{
		resolver: resolver,
		client:   client,
	}
}

// Current resolves the city to its identifier, fetches the current
// weather for it and maps the response onto the domain report.
func (s *weatherService) Current(ctx context.Context, city, units string) (*domain.Weather, error) {
	cityID, err := s.resolver.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}
	logger.Debug("city resolved", zap.String("city", city), zap.Int("id", cityID))

	current, err := s.client.CurrentByID(ctx, cityID, units)
	if err != nil {
		return nil, err
	}

	return mapCurrent(city, current), nil
}

func mapCurrent(city string, current *openweather.Current) *domain.Weather {
	// Sunrise and sunset arrive as UTC epochs plus a separate offset for
	// the location's zone.
	zone := time.FixedZone("", current.Timezone)

	weather := &domain.Weather{
		City:        city,
		Temperature: current.Main.Temp,
		FeelsLike:   current.Main.FeelsLike,
		TempMin:     current.Main.TempMin,
		TempMax:     current.Main.TempMax,
		Cloudiness:  current.Clouds.All,
		Pressure:    current.Main.Pressure,
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
		Sunrise:     time.Unix(current.Sys.Sunrise, 0).In(zone),
		Sunset:      time.Unix(current.Sys.Sunset, 0).In(zone),
	}
	if len(current.Weather) > 0 {
		weather.Mood = current.Weather[0].Main
	}
	return weather
}
