package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `env:"ENV" env-default:"dev"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	Weather  Weather
	Data     Data
}

type Weather struct {
	APIKey  string        `env:"OPENWEATHER_API_KEY" env-required:"true" env-description:"openweathermap.org application id"`
	BaseURL string        `env:"OPENWEATHER_BASE_URL" env-default:"https://api.openweathermap.org/data/2.5"`
	Timeout time.Duration `env:"OPENWEATHER_TIMEOUT" env-default:"10s"`
}

type Data struct {
	CitiesFile       string `env:"CITIES_FILE" env-default:"cities.json"`
	CountryCodesFile string `env:"COUNTRY_CODES_FILE" env-default:"country_codes.json"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
