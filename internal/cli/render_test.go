package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/weatherin/cli/internal/domain"
)

func metricWeather(city string) *domain.Weather {
	sofia := time.FixedZone("", 3*60*60)
	return &domain.Weather{
		City:        city,
		Temperature: 19.24,
		FeelsLike:   17.01,
		Mood:        "Clouds",
		TempMin:     19,
		TempMax:     19.44,
		Cloudiness:  100,
		Pressure:    1016,
		Humidity:    68,
		WindSpeed:   4.6,
		Sunrise:     time.Date(2021, 6, 1, 6, 0, 23, 0, sofia),
		Sunset:      time.Date(2021, 6, 1, 20, 46, 18, 0, sofia),
	}
}

func imperialWeather(city string) *domain.Weather {
	weather := metricWeather(city)
	weather.Temperature = 66.63
	weather.FeelsLike = 62.62
	weather.TempMin = 66.2
	weather.TempMax = 66.99
	weather.WindSpeed = 10.29
	return weather
}

func TestRenderDefaultSubset(t *testing.T) {
	opts := &Options{City: "Plovdiv", Units: "metric", TimeFormat: "24"}

	got := Render(metricWeather("Plovdiv"), opts)

	want := "\nThe requested current weather data for Plovdiv is as follows:\n\t" +
		"Current temperature is 19.24 Celsius.\n\t" +
		"Feels-like temperature is 17.01 Celsius.\n\t" +
		"Weather mood is Clouds.\n\t" +
		"Minimum temperature is 19 Celsius.\n\t" +
		"Maximum temperature is 19.44 Celsius.\n\t" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderVerboseImperial12h(t *testing.T) {
	opts := &Options{City: "apriltsi", Units: "imperial", TimeFormat: "12", Verbose: true}

	got := Render(imperialWeather("apriltsi"), opts)

	want := "\nThe requested current weather data for apriltsi is as follows:\n\t" +
		"Current temperature is 66.63 Fahrenheit.\n\t" +
		"Feels-like temperature is 62.62 Fahrenheit.\n\t" +
		"Weather mood is Clouds.\n\t" +
		"Minimum temperature is 66.2 Fahrenheit.\n\t" +
		"Maximum temperature is 66.99 Fahrenheit.\n\t" +
		"Cloudiness is 100%.\n\t" +
		"Pressure is 1016hPa.\n\t" +
		"Humidity is 68%.\n\t" +
		"Wind speed is 10.29 miles/hour.\n\t" +
		"Sunrise is at 06:00:23 AM.\n\t" +
		"Sunset is at 08:46:18 PM.\n\t" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderSelectedFieldsKeepDeclarationOrder(t *testing.T) {
	// Pressure requested before temperature on the command line still
	// renders after it.
	opts := &Options{City: "gabrovo", Units: "metric", TimeFormat: "24", Pressure: true, Temperature: true}

	got := Render(metricWeather("gabrovo"), opts)

	want := "\nThe requested current weather data for gabrovo is as follows:\n\t" +
		"Current temperature is 19.24 Celsius.\n\t" +
		"Pressure is 1016hPa.\n\t" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderSunTimes24h(t *testing.T) {
	opts := &Options{City: "rila", Units: "metric", TimeFormat: "24", Sunrise: true, Sunset: true}

	got := Render(metricWeather("rila"), opts)

	want := "\nThe requested current weather data for rila is as follows:\n\t" +
		"Sunrise is at 06:00:23.\n\t" +
		"Sunset is at 20:46:18.\n\t" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderUnitsFlagAloneKeepsDefaultSubset(t *testing.T) {
	opts := &Options{City: "yambol", Units: "imperial", TimeFormat: "24"}

	got := Render(imperialWeather("yambol"), opts)

	assert.Contains(t, got, "Current temperature is 66.63 Fahrenheit.")
	assert.Contains(t, got, "Maximum temperature is 66.99 Fahrenheit.")
	assert.NotContains(t, got, "Cloudiness")
	assert.NotContains(t, got, "Sunrise")
}
