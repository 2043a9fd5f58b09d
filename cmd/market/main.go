package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"futures-orders/internal/cli"
	"futures-orders/internal/trade"
)

func main() {
	if len(os.Args) != 4 {
		cli.Usage(
			"Usage: market <SYMBOL> <SIDE> <QUANTITY>",
			"Example: market BTCUSDT BUY 0.01",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	order, err := trade.PlaceMarket(ctx, app.Client, app.Log, os.Args[1], os.Args[2], os.Args[3])
	if err != nil {
		cli.Exit(err)
	}

	fmt.Println("\n✓ Market order placed successfully!")
	fmt.Printf("Order ID: %s\n", order.ID)
	fmt.Printf("Symbol: %s\n", order.Symbol)
	fmt.Printf("Side: %s\n", order.Side)
	fmt.Printf("Quantity: %s\n", order.ExecutedQty.String())
	fmt.Printf("Status: %s\n", order.Status)
	if order.AvgPrice.Cmp(decimal.Zero) > 0 {
		fmt.Printf("Average Price: %s\n", order.AvgPrice.String())
	}
}
