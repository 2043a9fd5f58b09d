package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"futures-orders/internal/cli"
	"futures-orders/internal/strategy"
)

func main() {
	if len(os.Args) != 7 {
		cli.Usage(
			"Usage: oco <SYMBOL> <SIDE> <QUANTITY> <TAKE_PROFIT_PRICE> <STOP_PRICE> <STOP_LIMIT_PRICE>",
			"Example: oco BTCUSDT BUY 0.01 46000 43000 42900",
			"",
			"This creates:",
			"  - Take profit order at TAKE_PROFIT_PRICE",
			"  - Stop loss order triggered at STOP_PRICE, executed at STOP_LIMIT_PRICE",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	result, err := strategy.Oco(ctx, strategy.Deps{Exchange: app.Client, Log: app.Log}, strategy.OcoParams{
		Symbol:         os.Args[1],
		Side:           os.Args[2],
		Qty:            os.Args[3],
		Price:          os.Args[4],
		StopPrice:      os.Args[5],
		StopLimitPrice: os.Args[6],
	})
	if err != nil {
		cli.Exit(err)
	}

	fmt.Println("\n✓ OCO orders placed successfully!")
	fmt.Println("\nTake Profit Order:")
	fmt.Printf("  Order ID: %s\n", result.TakeProfit.ID)
	fmt.Printf("  Price: %s\n", result.TakeProfit.Price.String())
	fmt.Printf("  Status: %s\n", result.TakeProfit.Status)

	fmt.Println("\nStop Loss Order:")
	fmt.Printf("  Order ID: %s\n", result.StopLoss.ID)
	fmt.Printf("  Stop Price: %s\n", result.StopLoss.StopPrice.String())
	fmt.Printf("  Limit Price: %s\n", result.StopLoss.Price.String())
	fmt.Printf("  Status: %s\n", result.StopLoss.Status)

	fmt.Println("\nNote: the two legs are not linked on the exchange side; cancel the")
	fmt.Println("remaining leg manually after one of them fills.")
}
