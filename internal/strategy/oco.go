package strategy

import (
	"context"

	"go.uber.org/zap"

	"futures-orders/internal/core"
	"futures-orders/internal/orderlog"
	"futures-orders/internal/validate"
)

type OcoParams struct {
	Symbol         string
	Side           string
	Qty            string
	Price          string
	StopPrice      string
	StopLimitPrice string
}

type OcoResult struct {
	CloseSide  core.Side
	TakeProfit core.Order
	StopLoss   core.Order
}

// Oco places two reduce-only closing orders on the opposite side of the
// position: a TAKE_PROFIT at Price and a STOP triggering at StopPrice with
// limit StopLimitPrice. The futures API does not link the legs server-side;
// both rest simultaneously and filling one does not cancel the other.
//
// Unlike grid and TWAP there is no per-item tolerance here: a lone unmatched
// leg is a risk exposure, so either leg failing propagates immediately and
// the second leg is never attempted after the first fails.
func Oco(ctx context.Context, deps Deps, p OcoParams) (OcoResult, error) {
	symbol, err := validate.Symbol(p.Symbol)
	if err != nil {
		return OcoResult{}, err
	}
	side, err := validate.Side(p.Side)
	if err != nil {
		return OcoResult{}, err
	}
	qty, err := validate.Quantity(p.Qty)
	if err != nil {
		return OcoResult{}, err
	}
	price, err := validate.Price(p.Price, "limit price")
	if err != nil {
		return OcoResult{}, err
	}
	stopPrice, err := validate.Price(p.StopPrice, "stop price")
	if err != nil {
		return OcoResult{}, err
	}
	stopLimitPrice, err := validate.Price(p.StopLimitPrice, "stop limit price")
	if err != nil {
		return OcoResult{}, err
	}

	closeSide := side.Opposite()
	deps.Log.Info("placing OCO pair",
		zap.String("symbol", symbol), zap.String("side", string(side)),
		zap.String("close_side", string(closeSide)), zap.String("qty", qty.String()),
		zap.String("take_profit", price.String()),
		zap.String("stop", stopPrice.String()), zap.String("stop_limit", stopLimitPrice.String()))

	if err := deps.connect(ctx); err != nil {
		return OcoResult{}, err
	}

	tpAttempt := orderlog.OrderAttempt{Type: "OCO_TAKE_PROFIT", Symbol: symbol, Side: closeSide, Qty: qty, Price: price, StopPrice: price}
	takeProfit, err := deps.Exchange.PlaceOrder(ctx, core.OrderRequest{
		Symbol:      symbol,
		Side:        closeSide,
		Type:        core.TakeProfit,
		Qty:         qty,
		Price:       price,
		StopPrice:   price,
		TimeInForce: core.GTC,
		ReduceOnly:  true,
	})
	if err != nil {
		deps.Log.OrderFailed(tpAttempt, err)
		return OcoResult{}, err
	}
	deps.Log.OrderPlaced(tpAttempt, takeProfit)

	slAttempt := orderlog.OrderAttempt{Type: "OCO_STOP", Symbol: symbol, Side: closeSide, Qty: qty, Price: stopLimitPrice, StopPrice: stopPrice}
	stopLoss, err := deps.Exchange.PlaceOrder(ctx, core.OrderRequest{
		Symbol:      symbol,
		Side:        closeSide,
		Type:        core.Stop,
		Qty:         qty,
		Price:       stopLimitPrice,
		StopPrice:   stopPrice,
		TimeInForce: core.GTC,
		ReduceOnly:  true,
	})
	if err != nil {
		deps.Log.OrderFailed(slAttempt, err)
		return OcoResult{}, err
	}
	deps.Log.OrderPlaced(slAttempt, stopLoss)

	return OcoResult{CloseSide: closeSide, TakeProfit: takeProfit, StopLoss: stopLoss}, nil
}
