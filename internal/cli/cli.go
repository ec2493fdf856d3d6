// Package cli parses command-line arguments into Options and renders
// the weather report. It owns process-level concerns like usage text
// and exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExitError is a parse or validation failure with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the full CLI surface. The order of the display fields here
// matches the flag declaration order, which fixes the order of the
// rendered report lines.
type Options struct {
	City string

	Temperature bool
	FeelsLike   bool
	Mood        bool
	MinTemp     bool
	MaxTemp     bool
	Cloudiness  bool
	Pressure    bool
	Humidity    bool
	WindSpeed   bool
	Sunrise     bool
	Sunset      bool

	Verbose    bool
	Units      string `validate:"oneof=metric imperial"`
	TimeFormat string `validate:"oneof=12 24"`
}

var validate = validator.New()

// Parse processes args into Options. The city argument may appear before
// or after the flags. A help request returns (nil, true, nil).
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	o := &Options{}

	flagSet := flag.NewFlagSet("weatherin", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
weatherin - current weather for a given city in the world.

Usage:
  weatherin [options] CITY

Arguments:
  CITY
    Name of the city; quote multi-word names ("sapareva banya").

Options:
`)
		flagSet.PrintDefaults()
	}

	boolAlias(flagSet, &o.Temperature, "temp", "temperature", "Show the current temperature.")
	boolAlias(flagSet, &o.FeelsLike, "feels", "feels-like", "Show the feels-like temperature.")
	boolAlias(flagSet, &o.Mood, "mood", "weather-mood", "Show the weather mood (clear, clouds, rain...).")
	boolAlias(flagSet, &o.MinTemp, "min", "min-temperature", "Show the minimum temperature.")
	boolAlias(flagSet, &o.MaxTemp, "max", "max-temperature", "Show the maximum temperature.")
	boolAlias(flagSet, &o.Cloudiness, "cloud", "cloudiness", "Show the cloudiness percentage.")
	boolAlias(flagSet, &o.Pressure, "press", "pressure", "Show the atmospheric pressure.")
	boolAlias(flagSet, &o.Humidity, "humid", "humidity", "Show the humidity percentage.")
	boolAlias(flagSet, &o.WindSpeed, "wind", "wind-speed", "Show the wind speed.")
	boolAlias(flagSet, &o.Sunrise, "sunrise", "sunrise-time", "Show the sunrise time.")
	boolAlias(flagSet, &o.Sunset, "sunset", "sunset-time", "Show the sunset time.")
	boolAlias(flagSet, &o.Verbose, "v", "verbose", "Show every weather field.")

	flagSet.StringVar(&o.Units, "u", "metric", "Measurement units: 'metric' or 'imperial'.")
	flagSet.StringVar(&o.Units, "units", "metric", "Measurement units: 'metric' or 'imperial' (long form).")
	flagSet.StringVar(&o.TimeFormat, "tf", "24", "Time format for sunrise/sunset: '12' or '24'.")
	flagSet.StringVar(&o.TimeFormat, "time-format", "24", "Time format for sunrise/sunset: '12' or '24' (long form).")

	rest := args
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		o.City = rest[0]
		rest = rest[1:]
	}

	if err := flagSet.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if o.City == "" && flagSet.NArg() > 0 {
		o.City = flagSet.Arg(0)
	}
	if o.City == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	if err := validate.Struct(o); err != nil {
		return nil, false, &ExitError{Code: 2, Message: validationMessage(err)}
	}

	return o, false, nil
}

// HasDisplayFlags reports whether any field-selection flag was set.
// Units and time format alone do not count: with none of these the
// report falls back to its default subset.
func (o *Options) HasDisplayFlags() bool {
	return o.Temperature || o.FeelsLike || o.Mood || o.MinTemp || o.MaxTemp ||
		o.Cloudiness || o.Pressure || o.Humidity || o.WindSpeed ||
		o.Sunrise || o.Sunset
}

func boolAlias(flagSet *flag.FlagSet, target *bool, short, long, usage string) {
	flagSet.BoolVar(target, short, false, usage)
	flagSet.BoolVar(target, long, false, usage+" (long form)")
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "Units":
			return "invalid units: must be 'metric' or 'imperial'"
		case "TimeFormat":
			return "invalid time-format: must be '12' or '24'"
		}
	}
	return err.Error()
}
