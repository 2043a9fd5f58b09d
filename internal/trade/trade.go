// Package trade holds the single-order placers. Each one validates its raw
// inputs, verifies connectivity, submits exactly one order and logs the
// outcome. Submission errors are returned unchanged, no retry.
package trade

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"futures-orders/internal/core"
	"futures-orders/internal/exchange"
	"futures-orders/internal/orderlog"
	"futures-orders/internal/validate"
)

func PlaceMarket(ctx context.Context, ex exchange.Exchange, log *orderlog.Logger, symbol, side, quantity string) (core.Order, error) {
	sym, err := validate.Symbol(symbol)
	if err != nil {
		return core.Order{}, err
	}
	sd, err := validate.Side(side)
	if err != nil {
		return core.Order{}, err
	}
	qty, err := validate.Quantity(quantity)
	if err != nil {
		return core.Order{}, err
	}

	attempt := orderlog.OrderAttempt{Type: "MARKET", Symbol: sym, Side: sd, Qty: qty}
	log.Info("placing market order",
		zap.String("symbol", sym), zap.String("side", string(sd)), zap.String("qty", qty.String()))

	if err := connect(ctx, ex, log); err != nil {
		return core.Order{}, err
	}
	order, err := ex.PlaceOrder(ctx, core.OrderRequest{
		Symbol: sym,
		Side:   sd,
		Type:   core.Market,
		Qty:    qty,
	})
	if err != nil {
		log.OrderFailed(attempt, err)
		return core.Order{}, err
	}
	log.OrderPlaced(attempt, order)
	return order, nil
}

func PlaceLimit(ctx context.Context, ex exchange.Exchange, log *orderlog.Logger, symbol, side, quantity, price string) (core.Order, error) {
	sym, err := validate.Symbol(symbol)
	if err != nil {
		return core.Order{}, err
	}
	sd, err := validate.Side(side)
	if err != nil {
		return core.Order{}, err
	}
	qty, err := validate.Quantity(quantity)
	if err != nil {
		return core.Order{}, err
	}
	limitPrice, err := validate.Price(price, "limit price")
	if err != nil {
		return core.Order{}, err
	}

	attempt := orderlog.OrderAttempt{Type: "LIMIT", Symbol: sym, Side: sd, Qty: qty, Price: limitPrice}
	log.Info("placing limit order",
		zap.String("symbol", sym), zap.String("side", string(sd)),
		zap.String("qty", qty.String()), zap.String("price", limitPrice.String()))

	if err := connect(ctx, ex, log); err != nil {
		return core.Order{}, err
	}
	order, err := ex.PlaceOrder(ctx, core.OrderRequest{
		Symbol:      sym,
		Side:        sd,
		Type:        core.Limit,
		Qty:         qty,
		Price:       limitPrice,
		TimeInForce: core.GTC,
	})
	if err != nil {
		log.OrderFailed(attempt, err)
		return core.Order{}, err
	}
	log.OrderPlaced(attempt, order)
	return order, nil
}

func PlaceStopLimit(ctx context.Context, ex exchange.Exchange, log *orderlog.Logger, symbol, side, quantity, stopPrice, limitPrice string) (core.Order, error) {
	sym, err := validate.Symbol(symbol)
	if err != nil {
		return core.Order{}, err
	}
	sd, err := validate.Side(side)
	if err != nil {
		return core.Order{}, err
	}
	qty, err := validate.Quantity(quantity)
	if err != nil {
		return core.Order{}, err
	}
	stop, err := validate.Price(stopPrice, "stop price")
	if err != nil {
		return core.Order{}, err
	}
	limit, err := validate.Price(limitPrice, "limit price")
	if err != nil {
		return core.Order{}, err
	}
	if err := validate.StopLimitPrices(stop, limit, sd); err != nil {
		return core.Order{}, err
	}

	attempt := orderlog.OrderAttempt{Type: "STOP_LIMIT", Symbol: sym, Side: sd, Qty: qty, Price: limit, StopPrice: stop}
	log.Info("placing stop-limit order",
		zap.String("symbol", sym), zap.String("side", string(sd)), zap.String("qty", qty.String()),
		zap.String("stop_price", stop.String()), zap.String("limit_price", limit.String()))

	if err := connect(ctx, ex, log); err != nil {
		return core.Order{}, err
	}
	order, err := ex.PlaceOrder(ctx, core.OrderRequest{
		Symbol:      sym,
		Side:        sd,
		Type:        core.Stop,
		Qty:         qty,
		Price:       limit,
		StopPrice:   stop,
		TimeInForce: core.GTC,
	})
	if err != nil {
		log.OrderFailed(attempt, err)
		return core.Order{}, err
	}
	log.OrderPlaced(attempt, order)
	return order, nil
}

func connect(ctx context.Context, ex exchange.Exchange, log *orderlog.Logger) error {
	if err := ex.Ping(ctx); err != nil {
		log.Error("connectivity check failed", zap.Error(err))
		return fmt.Errorf("connectivity check failed: %w", err)
	}
	return nil
}
