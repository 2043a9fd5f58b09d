package strategy

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"futures-orders/internal/core"
	"futures-orders/internal/orderlog"
	"futures-orders/internal/validate"
)

type GridParams struct {
	Symbol     string
	QtyPerGrid string
	LowerPrice string
	UpperPrice string
	NumGrids   string
}

type GridLevelFailure struct {
	Level decimal.Decimal
	Side  core.Side
	Err   error
}

// GridResult holds the outcome of a grid run. Partial completion is the
// expected successful outcome under partial failure: Buys and Sells carry
// what was placed, Failures what was not.
type GridResult struct {
	Symbol       string
	CurrentPrice decimal.Decimal
	Levels       []decimal.Decimal
	Step         decimal.Decimal
	Buys         []core.Order
	Sells        []core.Order
	Failures     []GridLevelFailure
}

// GridLevels computes numGrids evenly spaced price levels from lower to
// upper inclusive. The bounds are exact; intermediate levels carry the
// division precision of the step.
func GridLevels(lower, upper decimal.Decimal, numGrids int) (levels []decimal.Decimal, step decimal.Decimal) {
	step = upper.Sub(lower).Div(decimal.NewFromInt(int64(numGrids - 1)))
	levels = make([]decimal.Decimal, numGrids)
	for i := range levels {
		levels[i] = lower.Add(step.Mul(decimal.NewFromInt(int64(i))))
	}
	levels[0] = lower
	levels[numGrids-1] = upper
	return levels, step
}

// Grid places a ladder of GTC limit orders: buys below the sampled market
// price, sells above it. A level exactly at the sampled price is placed as
// neither side. Each level is attempted independently; one rejection does not
// stop the rest of the ladder.
func Grid(ctx context.Context, deps Deps, p GridParams) (GridResult, error) {
	symbol, err := validate.Symbol(p.Symbol)
	if err != nil {
		return GridResult{}, err
	}
	qty, err := validate.Quantity(p.QtyPerGrid)
	if err != nil {
		return GridResult{}, err
	}
	lower, err := validate.Price(p.LowerPrice, "lower price")
	if err != nil {
		return GridResult{}, err
	}
	upper, err := validate.Price(p.UpperPrice, "upper price")
	if err != nil {
		return GridResult{}, err
	}
	numGrids, err := validate.PositiveInt(p.NumGrids, "number of grids")
	if err != nil {
		return GridResult{}, err
	}
	if numGrids < 2 {
		return GridResult{}, core.Validationf("number of grids must be at least 2, got: %d", numGrids)
	}
	if upper.Cmp(lower) <= 0 {
		return GridResult{}, core.Validationf("upper price (%s) must be greater than lower price (%s)",
			upper.String(), lower.String())
	}

	levels, step := GridLevels(lower, upper, numGrids)
	deps.Log.Info("setting up grid strategy",
		zap.String("symbol", symbol),
		zap.String("lower", lower.String()), zap.String("upper", upper.String()),
		zap.Int("levels", numGrids), zap.String("step", step.String()),
		zap.String("qty_per_grid", qty.String()))

	if err := deps.connect(ctx); err != nil {
		return GridResult{}, err
	}
	currentPrice, err := deps.Exchange.TickerPrice(ctx, symbol)
	if err != nil {
		return GridResult{}, err
	}
	deps.Log.Info("current market price", zap.String("symbol", symbol), zap.String("price", currentPrice.String()))

	result := GridResult{
		Symbol:       symbol,
		CurrentPrice: currentPrice,
		Levels:       levels,
		Step:         step,
	}
	for _, level := range levels {
		var side core.Side
		switch cmp := level.Cmp(currentPrice); {
		case cmp < 0:
			side = core.Buy
		case cmp > 0:
			side = core.Sell
		default:
			// A level at the sampled price belongs to neither side of the
			// ladder and is skipped.
			continue
		}
		attempt := orderlog.OrderAttempt{Type: "GRID_LIMIT", Symbol: symbol, Side: side, Qty: qty, Price: level}
		order, err := deps.Exchange.PlaceOrder(ctx, core.OrderRequest{
			Symbol:      symbol,
			Side:        side,
			Type:        core.Limit,
			Qty:         qty,
			Price:       level,
			TimeInForce: core.GTC,
		})
		if err != nil {
			deps.Log.OrderFailed(attempt, err)
			deps.printf("✗ Error at price %s: %v\n", level.String(), err)
			result.Failures = append(result.Failures, GridLevelFailure{Level: level, Side: side, Err: err})
			continue
		}
		deps.Log.OrderPlaced(attempt, order)
		if side == core.Buy {
			result.Buys = append(result.Buys, order)
			deps.printf("✓ Buy order %d placed at %s\n", len(result.Buys), level.String())
		} else {
			result.Sells = append(result.Sells, order)
			deps.printf("✓ Sell order %d placed at %s\n", len(result.Sells), level.String())
		}
	}

	deps.Log.Info("grid strategy complete",
		zap.String("symbol", symbol),
		zap.Int("buy_orders", len(result.Buys)),
		zap.Int("sell_orders", len(result.Sells)),
		zap.Int("failures", len(result.Failures)))
	return result, nil
}
