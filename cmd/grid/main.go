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
	if len(os.Args) != 6 {
		cli.Usage(
			"Usage: grid <SYMBOL> <QUANTITY_PER_GRID> <LOWER_PRICE> <UPPER_PRICE> <NUM_GRIDS>",
			"Example: grid BTCUSDT 0.01 43000 47000 10",
			"",
			"This will:",
			"  - Create 10 grid levels between 43000 and 47000",
			"  - Place buy orders below current price",
			"  - Place sell orders above current price",
			"  - Each order will be for 0.01 BTC",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()

	fmt.Printf("\nSetting up grid strategy for %s...\n", os.Args[1])
	fmt.Printf("Price range: %s - %s\n", os.Args[3], os.Args[4])
	fmt.Printf("Grid levels: %s\n", os.Args[5])
	fmt.Printf("Quantity per grid: %s\n\n", os.Args[2])

	result, err := strategy.Grid(ctx, strategy.Deps{Exchange: app.Client, Log: app.Log}, strategy.GridParams{
		Symbol:     os.Args[1],
		QtyPerGrid: os.Args[2],
		LowerPrice: os.Args[3],
		UpperPrice: os.Args[4],
		NumGrids:   os.Args[5],
	})
	if err != nil {
		cli.Exit(err)
	}

	fmt.Println("\n✓ Grid strategy setup completed!")
	fmt.Printf("Current market price: %s\n", result.CurrentPrice.String())
	fmt.Printf("Buy orders placed: %d\n", len(result.Buys))
	fmt.Printf("Sell orders placed: %d\n", len(result.Sells))
	fmt.Printf("Total orders: %d\n", len(result.Buys)+len(result.Sells))
	if n := len(result.Failures); n > 0 {
		fmt.Printf("Failed levels: %d\n", n)
	}

	fmt.Println("\nGrid price levels:")
	for i, level := range result.Levels {
		marker := " "
		if level.Sub(result.CurrentPrice).Abs().Cmp(result.Step) < 0 {
			marker = "→"
		}
		fmt.Printf("  %s Level %d: %s\n", marker, i+1, level.StringFixed(2))
	}
}
