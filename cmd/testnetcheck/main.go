package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futures-orders/internal/cli"
)

type checkResult struct {
	name       string
	durationMs int64
	detail     string
	err        error
}

func main() {
	if len(os.Args) != 1 {
		cli.Usage("Usage: testnetcheck")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	fmt.Println("Testing Binance Futures Testnet connection...")

	var results []checkResult
	run := func(name string, fn func() (string, error)) {
		start := time.Now()
		detail, err := fn()
		cr := checkResult{name: name, durationMs: time.Since(start).Milliseconds(), detail: detail, err: err}
		results = append(results, cr)
		if cr.err != nil {
			fmt.Printf("[FAIL] %s (%dms) - %v\n", cr.name, cr.durationMs, cr.err)
			return
		}
		fmt.Printf("[PASS] %s (%dms)", cr.name, cr.durationMs)
		if cr.detail != "" {
			fmt.Printf(" - %s", cr.detail)
		}
		fmt.Println()
	}

	run("ping", func() (string, error) {
		return "", app.Client.Ping(ctx)
	})
	run("server_time", func() (string, error) {
		serverTime, err := app.Client.ServerTime(ctx)
		if err != nil {
			return "", err
		}
		drift := time.Since(serverTime).Round(time.Millisecond)
		return fmt.Sprintf("server=%s drift=%s", serverTime.UTC().Format(time.RFC3339), drift), nil
	})
	run("account", func() (string, error) {
		balance, err := app.Client.AccountBalance(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("totalWalletBalance=%s USDT", balance.String()), nil
	})

	failed := 0
	for _, cr := range results {
		if cr.err != nil {
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("\n✗ Connection failed (%d/%d checks). Check your API credentials and network.\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Println("\n✓ Connection successful!")
}
