package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/weatherin/cli/internal/cli"
	"github.com/weatherin/cli/internal/config"
	"github.com/weatherin/cli/internal/domain"
	"github.com/weatherin/cli/internal/repository"
	"github.com/weatherin/cli/internal/service"
	"github.com/weatherin/cli/internal/service/openweather"
	"github.com/weatherin/cli/pkg/logger"
	"github.com/weatherin/cli/pkg/prompt"
)

func main() {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	opts, shouldExit, err := cli.Parse(os.Args[1:], os.Stdout)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if shouldExit {
		return
	}

	cfg := config.MustLoad()

	logger.Setup(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logger.Debug("starting weatherin", zap.String("env", cfg.Env), zap.String("city", opts.City))

	repos, err := repository.NewRepositories(cfg.Data)
	if err != nil {
		logger.Error("reference data load failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "A critical startup error occurred: %v\n", err)
		os.Exit(1)
	}

	services := service.NewServices(service.Deps{
		Repos:  repos,
		Client: openweather.NewClient(cfg.Weather),
		Prompt: prompt.New(os.Stdin, os.Stdout),
	})

	weather, err := services.Weather.Current(context.Background(), opts.City, opts.Units)
	if err != nil {
		reportFailure(err)
		return
	}

	fmt.Print(cli.Render(weather, opts))
}

// reportFailure turns the typed failures into their fixed user-facing
// messages. None of them is fatal: bad input gets a message and a clean
// exit, never a crash.
func reportFailure(err error) {
	var countryErr *domain.CountryNotRecognizedError
	if errors.As(err, &countryErr) {
		fmt.Printf("\nError: %s!\n"+
			"Please use country names or 2-letter codes "+
			"as defined in the ISO-3166-1 standard.\n", countryErr.Error())
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("\nError: %s!\n", err.Error())
		return
	}

	var apiErr *openweather.APIError
	if errors.As(err, &apiErr) {
		logger.Debug("weather service call failed", zap.Int("status", apiErr.StatusCode))
		fmt.Printf("Error: %s.\n", apiErr.Error())
		return
	}

	logger.Error("weather lookup failed", zap.Error(err))
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
