package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futures-orders/internal/cli"
	"futures-orders/internal/validate"
)

func main() {
	if len(os.Args) != 2 {
		cli.Usage(
			"Usage: pricewatch <SYMBOL>",
			"Example: pricewatch BTCUSDT",
			"",
			"Streams mark price updates until interrupted (Ctrl+C).",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	symbol, err := validate.Symbol(os.Args[1])
	if err != nil {
		cli.Exit(err)
	}

	stream, err := app.Client.NewMarkPriceStream(ctx, symbol)
	if err != nil {
		cli.Exit(err)
	}
	defer stream.Close()

	fmt.Printf("Watching %s mark price (Ctrl+C to stop)...\n\n", symbol)
	updates, errs := stream.Updates(ctx)
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			fmt.Printf("%s  %s  mark=%s  index=%s  funding=%s (next %s)\n",
				update.EventTime.Format("15:04:05"),
				update.Symbol,
				update.MarkPrice.StringFixed(2),
				update.IndexPrice.StringFixed(2),
				update.FundingRate.String(),
				update.NextFunding.Format(time.Kitchen))
		case err, ok := <-errs:
			if ok && err != nil {
				cli.Exit(err)
			}
		}
	}
}
