package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weatherin/cli/internal/domain"
)

const (
	timeLayout24 = "15:04:05"
	timeLayout12 = "03:04:05 PM"
)

// Render formats the selected weather fields as the report text. With
// -v every field is shown; with no display flags a fixed default subset
// (temperature, feels-like, mood, min, max) is shown; otherwise exactly
// the requested fields, in flag declaration order.
func Render(weather *domain.Weather, opts *Options) string {
	tempUnit := "Celsius"
	windUnit := "meter/sec"
	if opts.Units == "imperial" {
		tempUnit = "Fahrenheit"
		windUnit = "miles/hour"
	}

	timeLayout := timeLayout24
	if opts.TimeFormat == "12" {
		timeLayout = timeLayout12
	}

	defaults := !opts.Verbose && !opts.HasDisplayFlags()

	lines := []struct {
		selected bool
		text     string
	}{
		{opts.Temperature || defaults,
			fmt.Sprintf("Current temperature is %s %s.", formatDegrees(weather.Temperature), tempUnit)},
		{opts.FeelsLike || defaults,
			fmt.Sprintf("Feels-like temperature is %s %s.", formatDegrees(weather.FeelsLike), tempUnit)},
		{opts.Mood || defaults,
			fmt.Sprintf("Weather mood is %s.", weather.Mood)},
		{opts.MinTemp || defaults,
			fmt.Sprintf("Minimum temperature is %s %s.", formatDegrees(weather.TempMin), tempUnit)},
		{opts.MaxTemp || defaults,
			fmt.Sprintf("Maximum temperature is %s %s.", formatDegrees(weather.TempMax), tempUnit)},
		{opts.Cloudiness,
			fmt.Sprintf("Cloudiness is %d%%.", weather.Cloudiness)},
		{opts.Pressure,
			fmt.Sprintf("Pressure is %dhPa.", weather.Pressure)},
		{opts.Humidity,
			fmt.Sprintf("Humidity is %d%%.", weather.Humidity)},
		{opts.WindSpeed,
			fmt.Sprintf("Wind speed is %s %s.", formatDegrees(weather.WindSpeed), windUnit)},
		{opts.Sunrise,
			fmt.Sprintf("Sunrise is at %s.", weather.Sunrise.Format(timeLayout))},
		{opts.Sunset,
			fmt.Sprintf("Sunset is at %s.", weather.Sunset.Format(timeLayout))},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nThe requested current weather data for %s is as follows:\n\t", weather.City)
	for _, line := range lines {
		if opts.Verbose || line.selected {
			b.WriteString(line.text)
			b.WriteString("\n\t")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// formatDegrees prints a reading with the fewest digits that round-trip:
// 19 stays "19", 19.24 stays "19.24".
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
