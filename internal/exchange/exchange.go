package exchange

import (
	"context"

	"github.com/shopspring/decimal"

	"futures-orders/internal/core"
)

// Exchange is the futures trading surface the tools talk to. All state
// (balances, open orders, order ids) lives on the exchange side.
type Exchange interface {
	Ping(ctx context.Context) error
	TickerPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	PlaceOrder(ctx context.Context, req core.OrderRequest) (core.Order, error)
	OpenOrders(ctx context.Context, symbol string) ([]core.Order, error)
	CancelOrder(ctx context.Context, symbol, orderID string) (core.Order, error)
	CancelAllOrders(ctx context.Context, symbol string) error
	QueryOrder(ctx context.Context, symbol, orderID string) (core.Order, error)
}
