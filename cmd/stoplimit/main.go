package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"futures-orders/internal/cli"
	"futures-orders/internal/trade"
)

func main() {
	if len(os.Args) != 6 {
		cli.Usage(
			"Usage: stoplimit <SYMBOL> <SIDE> <QUANTITY> <STOP_PRICE> <LIMIT_PRICE>",
			"Example: stoplimit BTCUSDT BUY 0.01 44500 44000",
			"",
			"Note:",
			"  - For BUY: stop_price should be >= limit_price",
			"  - For SELL: stop_price should be <= limit_price",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	order, err := trade.PlaceStopLimit(ctx, app.Client, app.Log, os.Args[1], os.Args[2], os.Args[3], os.Args[4], os.Args[5])
	if err != nil {
		cli.Exit(err)
	}

	fmt.Println("\n✓ Stop-limit order placed successfully!")
	fmt.Printf("Order ID: %s\n", order.ID)
	fmt.Printf("Symbol: %s\n", order.Symbol)
	fmt.Printf("Side: %s\n", order.Side)
	fmt.Printf("Quantity: %s\n", order.Qty.String())
	fmt.Printf("Stop Price: %s\n", order.StopPrice.String())
	fmt.Printf("Limit Price: %s\n", order.Price.String())
	fmt.Printf("Status: %s\n", order.Status)
}
