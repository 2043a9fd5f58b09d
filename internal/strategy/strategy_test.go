package strategy

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"futures-orders/internal/core"
	"futures-orders/internal/orderlog"
)

type fakeExchange struct {
	nextID int
	placed []core.OrderRequest
	price  decimal.Decimal

	pingErr  error
	priceErr error
	// placeErrs fails the Nth PlaceOrder call (0-indexed).
	placeErrs map[int]error
	// fill reported on market orders
	avgPrice decimal.Decimal
}

func (f *fakeExchange) Ping(context.Context) error { return f.pingErr }

func (f *fakeExchange) TickerPrice(context.Context, string) (decimal.Decimal, error) {
	if f.priceErr != nil {
		return decimal.Zero, f.priceErr
	}
	return f.price, nil
}

func (f *fakeExchange) PlaceOrder(_ context.Context, req core.OrderRequest) (core.Order, error) {
	call := len(f.placed)
	f.placed = append(f.placed, req)
	if err, ok := f.placeErrs[call]; ok {
		return core.Order{}, err
	}
	f.nextID++
	order := core.Order{
		ID:         fmt.Sprintf("o-%d", f.nextID),
		Symbol:     req.Symbol,
		Side:       req.Side,
		Type:       req.Type,
		Price:      req.Price,
		StopPrice:  req.StopPrice,
		Qty:        req.Qty,
		Status:     core.OrderNew,
		ReduceOnly: req.ReduceOnly,
	}
	if req.Type == core.Market {
		order.Status = core.OrderFilled
		order.ExecutedQty = req.Qty
		order.AvgPrice = f.avgPrice
	}
	return order, nil
}

func (f *fakeExchange) OpenOrders(context.Context, string) ([]core.Order, error) { return nil, nil }

func (f *fakeExchange) CancelOrder(context.Context, string, string) (core.Order, error) {
	return core.Order{}, nil
}

func (f *fakeExchange) CancelAllOrders(context.Context, string) error { return nil }

func (f *fakeExchange) QueryOrder(context.Context, string, string) (core.Order, error) {
	return core.Order{}, nil
}

func testDeps(t *testing.T, ex *fakeExchange) Deps {
	t.Helper()
	log, err := orderlog.New(filepath.Join(t.TempDir(), "orders.log"))
	if err != nil {
		t.Fatalf("orderlog.New() error = %v", err)
	}
	t.Cleanup(log.Close)
	return Deps{
		Exchange: ex,
		Log:      log,
		Printf:   func(string, ...interface{}) {},
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}
