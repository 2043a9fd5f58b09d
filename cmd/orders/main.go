package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"

	"futures-orders/internal/cli"
	"futures-orders/internal/core"
	"futures-orders/internal/manager"
)

func usage() {
	cli.Usage(
		"Order Management Utilities",
		"",
		"Usage:",
		"  orders list [SYMBOL]           - List open orders",
		"  orders cancel <SYMBOL> <ID>    - Cancel specific order",
		"  orders cancel-all <SYMBOL>     - Cancel all orders for symbol",
		"  orders status <SYMBOL> <ID>    - Get order status",
		"",
		"Examples:",
		"  orders list",
		"  orders list BTCUSDT",
		"  orders cancel BTCUSDT 12345678",
		"  orders cancel-all BTCUSDT",
		"  orders status BTCUSDT 12345678",
	)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	command := strings.ToLower(os.Args[1])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.Bootstrap()
	if err != nil {
		cli.Exit(err)
	}
	defer app.Close()
	m := manager.New(app.Client, app.Log)

	switch command {
	case "list":
		if len(os.Args) > 3 {
			cli.Usage("Usage: orders list [SYMBOL]")
		}
		symbol := ""
		if len(os.Args) == 3 {
			symbol = os.Args[2]
		}
		orders, err := m.OpenOrders(ctx, symbol)
		if err != nil {
			cli.Exit(err)
		}
		fmt.Print(manager.RenderTable(orders))

	case "cancel":
		if len(os.Args) != 4 {
			cli.Usage("Usage: orders cancel <SYMBOL> <ORDER_ID>")
		}
		if _, err := m.Cancel(ctx, os.Args[2], os.Args[3]); err != nil {
			cli.Exit(err)
		}
		fmt.Printf("✓ Order %s cancelled successfully\n", os.Args[3])

	case "cancel-all":
		if len(os.Args) != 3 {
			cli.Usage("Usage: orders cancel-all <SYMBOL>")
		}
		if err := m.CancelAll(ctx, os.Args[2]); err != nil {
			cli.Exit(err)
		}
		fmt.Printf("✓ All orders for %s cancelled successfully\n", strings.ToUpper(os.Args[2]))

	case "status":
		if len(os.Args) != 4 {
			cli.Usage("Usage: orders status <SYMBOL> <ORDER_ID>")
		}
		order, err := m.Status(ctx, os.Args[2], os.Args[3])
		if err != nil {
			cli.Exit(err)
		}
		printOrder(order)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func printOrder(order core.Order) {
	fmt.Println("\nOrder Details:")
	fmt.Printf("  Order ID: %s\n", order.ID)
	fmt.Printf("  Symbol: %s\n", order.Symbol)
	fmt.Printf("  Side: %s\n", order.Side)
	fmt.Printf("  Type: %s\n", order.Type)
	fmt.Printf("  Status: %s\n", order.Status)
	fmt.Printf("  Original Qty: %s\n", order.Qty.String())
	fmt.Printf("  Executed Qty: %s\n", order.ExecutedQty.String())
	fmt.Printf("  Price: %s\n", order.Price.String())
	if order.StopPrice.Cmp(decimal.Zero) > 0 {
		fmt.Printf("  Stop Price: %s\n", order.StopPrice.String())
	}
}
