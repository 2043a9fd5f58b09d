package strategy

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"futures-orders/internal/core"
	"futures-orders/internal/orderlog"
	"futures-orders/internal/validate"
)

type TwapParams struct {
	Symbol      string
	Side        string
	TotalQty    string
	NumOrders   string
	IntervalSec string
}

type TwapSlice struct {
	Index int
	Order core.Order
	Err   error
}

func (s TwapSlice) Executed() bool { return s.Err == nil }

type TwapResult struct {
	Symbol    string
	Side      core.Side
	TotalQty  decimal.Decimal
	SliceQty  decimal.Decimal
	NumOrders int
	Slices    []TwapSlice
}

func (r TwapResult) ExecutedCount() int {
	n := 0
	for _, s := range r.Slices {
		if s.Executed() {
			n++
		}
	}
	return n
}

// AvgPrice is the quantity-weighted mean of the per-slice average prices,
// over slices that report both an executed quantity and an average price.
// ok is false when no slice reported them.
func (r TwapResult) AvgPrice() (avg decimal.Decimal, ok bool) {
	totalQty := decimal.Zero
	totalCost := decimal.Zero
	for _, s := range r.Slices {
		if !s.Executed() {
			continue
		}
		if s.Order.ExecutedQty.Cmp(decimal.Zero) <= 0 || s.Order.AvgPrice.Cmp(decimal.Zero) <= 0 {
			continue
		}
		totalQty = totalQty.Add(s.Order.ExecutedQty)
		totalCost = totalCost.Add(s.Order.ExecutedQty.Mul(s.Order.AvgPrice))
	}
	if totalQty.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, false
	}
	return totalCost.Div(totalQty), true
}

// Twap splits totalQty into numOrders equal market-order slices and submits
// them sequentially, pausing intervalSec between consecutive slices (no pause
// after the last). A failed slice is recorded and the run continues; an
// interrupted pause aborts the run and returns the slices executed so far.
func Twap(ctx context.Context, deps Deps, p TwapParams) (TwapResult, error) {
	symbol, err := validate.Symbol(p.Symbol)
	if err != nil {
		return TwapResult{}, err
	}
	side, err := validate.Side(p.Side)
	if err != nil {
		return TwapResult{}, err
	}
	totalQty, err := validate.Quantity(p.TotalQty)
	if err != nil {
		return TwapResult{}, err
	}
	numOrders, err := validate.PositiveInt(p.NumOrders, "number of orders")
	if err != nil {
		return TwapResult{}, err
	}
	intervalSec, err := validate.PositiveInt(p.IntervalSec, "interval seconds")
	if err != nil {
		return TwapResult{}, err
	}

	sliceQty := totalQty.Div(decimal.NewFromInt(int64(numOrders)))
	interval := time.Duration(intervalSec) * time.Second
	deps.Log.Info("starting TWAP execution",
		zap.String("symbol", symbol), zap.String("side", string(side)),
		zap.String("total_qty", totalQty.String()), zap.Int("num_orders", numOrders),
		zap.String("slice_qty", sliceQty.String()), zap.Int("interval_sec", intervalSec))

	if err := deps.connect(ctx); err != nil {
		return TwapResult{}, err
	}

	result := TwapResult{
		Symbol:    symbol,
		Side:      side,
		TotalQty:  totalQty,
		SliceQty:  sliceQty,
		NumOrders: numOrders,
	}
	for i := 0; i < numOrders; i++ {
		attempt := orderlog.OrderAttempt{Type: "TWAP_MARKET", Symbol: symbol, Side: side, Qty: sliceQty}
		order, err := deps.Exchange.PlaceOrder(ctx, core.OrderRequest{
			Symbol: symbol,
			Side:   side,
			Type:   core.Market,
			Qty:    sliceQty,
		})
		if err != nil {
			deps.Log.OrderFailed(attempt, err)
			deps.printf("✗ Error on order %d/%d: %v\n", i+1, numOrders, err)
			result.Slices = append(result.Slices, TwapSlice{Index: i, Err: err})
		} else {
			deps.Log.OrderPlaced(attempt, order)
			deps.printf("✓ Order %d/%d executed - ID: %s\n", i+1, numOrders, order.ID)
			result.Slices = append(result.Slices, TwapSlice{Index: i, Order: order})
		}

		if i < numOrders-1 {
			deps.printf("  Waiting %d seconds...\n", intervalSec)
			if err := deps.sleep(ctx, interval); err != nil {
				deps.Log.Error("TWAP execution interrupted",
					zap.Int("executed", result.ExecutedCount()), zap.Int("total", numOrders), zap.Error(err))
				return result, err
			}
		}
	}

	deps.Log.Info("TWAP execution complete",
		zap.String("symbol", symbol),
		zap.Int("executed", result.ExecutedCount()), zap.Int("total", numOrders))
	return result, nil
}
