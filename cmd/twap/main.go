package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"futures-orders/internal/cli"
	"futures-orders/internal/strategy"
)

func main() {
	if len(os.Args) != 6 {
		cli.Usage(
			"Usage: twap <SYMBOL> <SIDE> <TOTAL_QUANTITY> <NUM_ORDERS> <INTERVAL_SECONDS>",
			"Example: twap BTCUSDT BUY 0.1 10 30",
			"",
			"This will:",
			"  - Split 0.1 BTC into 10 orders of 0.01 BTC each",
			"  - Execute one order every 30 seconds",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	fmt.Println("\nStarting TWAP execution...")
	fmt.Printf("Total quantity: %s %s\n", os.Args[3], os.Args[1])
	fmt.Printf("Split into: %s orders\n", os.Args[4])
	fmt.Printf("Interval: %s seconds\n\n", os.Args[5])

	result, err := strategy.Twap(ctx, strategy.Deps{Exchange: app.Client, Log: app.Log}, strategy.TwapParams{
		Symbol:      os.Args[1],
		Side:        os.Args[2],
		TotalQty:    os.Args[3],
		NumOrders:   os.Args[4],
		IntervalSec: os.Args[5],
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Printf("\n\n✗ TWAP execution interrupted (%d/%d orders executed)\n",
				result.ExecutedCount(), result.NumOrders)
			os.Exit(1)
		}
		cli.Exit(err)
	}

	fmt.Println("\n✓ TWAP execution completed!")
	fmt.Printf("Successfully executed: %d/%d orders\n", result.ExecutedCount(), result.NumOrders)
	if avg, ok := result.AvgPrice(); ok {
		fmt.Printf("Average execution price: %s\n", avg.StringFixed(2))
	}
}
