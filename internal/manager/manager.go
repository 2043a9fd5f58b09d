// Package manager wraps the pass-through order queries: listing, cancelling
// and status lookups, plus the table renderer the orders CLI prints.
package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"futures-orders/internal/core"
	"futures-orders/internal/exchange"
	"futures-orders/internal/orderlog"
	"futures-orders/internal/validate"
)

type Manager struct {
	ex  exchange.Exchange
	log *orderlog.Logger
}

func New(ex exchange.Exchange, log *orderlog.Logger) *Manager {
	return &Manager{ex: ex, log: log}
}

// OpenOrders lists open orders, filtered by symbol when one is given.
func (m *Manager) OpenOrders(ctx context.Context, symbol string) ([]core.Order, error) {
	if symbol != "" {
		validated, err := validate.Symbol(symbol)
		if err != nil {
			return nil, err
		}
		symbol = validated
	}
	orders, err := m.ex.OpenOrders(ctx, symbol)
	if err != nil {
		m.log.Error("list open orders failed", zap.String("symbol", symbol), zap.Error(err))
		return nil, err
	}
	m.log.Info("retrieved open orders", zap.String("symbol", symbol), zap.Int("count", len(orders)))
	return orders, nil
}

func (m *Manager) Cancel(ctx context.Context, symbol, orderID string) (core.Order, error) {
	validated, err := validate.Symbol(symbol)
	if err != nil {
		return core.Order{}, err
	}
	order, err := m.ex.CancelOrder(ctx, validated, orderID)
	if err != nil {
		m.log.Error("cancel order failed",
			zap.String("symbol", validated), zap.String("order_id", orderID), zap.Error(err))
		return core.Order{}, err
	}
	m.log.Info("cancelled order", zap.String("symbol", validated), zap.String("order_id", orderID))
	return order, nil
}

func (m *Manager) CancelAll(ctx context.Context, symbol string) error {
	validated, err := validate.Symbol(symbol)
	if err != nil {
		return err
	}
	if err := m.ex.CancelAllOrders(ctx, validated); err != nil {
		m.log.Error("cancel all orders failed", zap.String("symbol", validated), zap.Error(err))
		return err
	}
	m.log.Info("cancelled all orders", zap.String("symbol", validated))
	return nil
}

func (m *Manager) Status(ctx context.Context, symbol, orderID string) (core.Order, error) {
	validated, err := validate.Symbol(symbol)
	if err != nil {
		return core.Order{}, err
	}
	order, err := m.ex.QueryOrder(ctx, validated, orderID)
	if err != nil {
		m.log.Error("query order failed",
			zap.String("symbol", validated), zap.String("order_id", orderID), zap.Error(err))
		return core.Order{}, err
	}
	m.log.Info("retrieved order status", zap.String("symbol", validated), zap.String("order_id", orderID))
	return order, nil
}

// RenderTable formats orders as a fixed-width table. Market orders have no
// limit price; the price column renders "MARKET" for them.
func RenderTable(orders []core.Order) string {
	if len(orders) == 0 {
		return "No orders found.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nTotal Orders: %d\n", len(orders))
	b.WriteString(strings.Repeat("-", 100) + "\n")
	fmt.Fprintf(&b, "%-15s %-10s %-6s %-12s %-12s %-12s %-10s\n",
		"ID", "Symbol", "Side", "Type", "Quantity", "Price", "Status")
	b.WriteString(strings.Repeat("-", 100) + "\n")
	for _, order := range orders {
		price := "MARKET"
		if order.Type != core.Market && order.Price.Cmp(decimal.Zero) > 0 {
			price = order.Price.String()
		}
		fmt.Fprintf(&b, "%-15s %-10s %-6s %-12s %-12s %-12s %-10s\n",
			order.ID, order.Symbol, order.Side, order.Type, order.Qty.String(), price, order.Status)
	}
	return b.String()
}
