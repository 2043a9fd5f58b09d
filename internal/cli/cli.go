// Package cli is the shared entrypoint plumbing: env loading, config, the
// order logger, the exchange client and the uniform error-to-exit mapping.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"futures-orders/internal/config"
	"futures-orders/internal/core"
	"futures-orders/internal/exchange/binance"
	"futures-orders/internal/orderlog"
)

type App struct {
	Config config.Config
	Client *binance.Client
	Log    *orderlog.Logger
}

// Bootstrap loads .env, builds the configuration, the order logger and the
// exchange client. No network traffic happens here; connectivity is verified
// by the operation that follows validation.
func Bootstrap() (*App, error) {
	_ = godotenv.Load()
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, err
	}
	log, err := orderlog.New(cfg.Log.Path)
	if err != nil {
		return nil, err
	}
	client, err := binance.NewClient(cfg.Exchange)
	if err != nil {
		log.Close()
		return nil, err
	}
	return &App{Config: cfg, Client: client, Log: log}, nil
}

func (a *App) Close() {
	a.Log.Close()
}

// Exit prints err with its taxonomy prefix and terminates with code 1.
// Validation errors, exchange API errors and everything else each get a
// distinguishable prefix.
func Exit(err error) {
	var verr core.ValidationError
	var apiErr binance.APIError
	switch {
	case errors.As(err, &verr):
		fmt.Printf("\n✗ Validation Error: %s\n", verr.Reason)
	case errors.As(err, &apiErr):
		fmt.Printf("\n✗ API Error: %s\n", apiErr.Error())
	default:
		fmt.Printf("\n✗ Error: %v\n", err)
	}
	os.Exit(1)
}

// Usage prints the given lines to stdout and exits 1. Used on arity
// mismatches.
func Usage(lines ...string) {
	for _, line := range lines {
		fmt.Println(line)
	}
	os.Exit(1)
}
