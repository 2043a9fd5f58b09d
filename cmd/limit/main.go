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
	if len(os.Args) != 5 {
		cli.Usage(
			"Usage: limit <SYMBOL> <SIDE> <QUANTITY> <PRICE>",
			"Example: limit BTCUSDT SELL 0.01 45000",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	order, err := trade.PlaceLimit(ctx, app.Client, app.Log, os.Args[1], os.Args[2], os.Args[3], os.Args[4])
	if err != nil {
		cli.Exit(err)
	}

	fmt.Println("\n✓ Limit order placed successfully!")
	fmt.Printf("Order ID: %s\n", order.ID)
	fmt.Printf("Symbol: %s\n", order.Symbol)
	fmt.Printf("Side: %s\n", order.Side)
	fmt.Printf("Quantity: %s\n", order.Qty.String())
	fmt.Printf("Price: %s\n", order.Price.String())
	fmt.Printf("Status: %s\n", order.Status)
}
