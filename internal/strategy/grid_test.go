package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-orders/internal/core"
)

func TestGridLevelsSpansBoundsWithConstantStep(t *testing.T) {
	lower := decimal.RequireFromString("43000")
	upper := decimal.RequireFromString("47000")

	levels, step := GridLevels(lower, upper, 5)

	require.Len(t, levels, 5)
	assert.True(t, levels[0].Equal(lower), "first level = %s, want %s", levels[0], lower)
	assert.True(t, levels[4].Equal(upper), "last level = %s, want %s", levels[4], upper)
	assert.True(t, step.Equal(decimal.RequireFromString("1000")))

	tolerance := decimal.RequireFromString("0.0000001")
	for i := 1; i < len(levels); i++ {
		diff := levels[i].Sub(levels[i-1])
		assert.True(t, diff.Sub(step).Abs().Cmp(tolerance) < 0,
			"step between levels %d and %d = %s, want %s", i-1, i, diff, step)
	}
}

func TestGridLevelsNonTerminatingStepKeepsExactBounds(t *testing.T) {
	lower := decimal.RequireFromString("100")
	upper := decimal.RequireFromString("200")

	levels, _ := GridLevels(lower, upper, 4) // step 100/3

	require.Len(t, levels, 4)
	assert.True(t, levels[0].Equal(lower))
	assert.True(t, levels[3].Equal(upper))
}

func TestGridPlacesBuysBelowSellsAboveSkipsEqual(t *testing.T) {
	ex := &fakeExchange{price: dec(t, "45000")}
	deps := testDeps(t, ex)

	result, err := Grid(context.Background(), deps, GridParams{
		Symbol:     "btcusdt",
		QtyPerGrid: "0.01",
		LowerPrice: "43000",
		UpperPrice: "47000",
		NumGrids:   "3",
	})
	require.NoError(t, err)

	// levels 43000, 45000, 47000 against current 45000
	require.Len(t, result.Buys, 1)
	require.Len(t, result.Sells, 1)
	assert.Len(t, ex.placed, 2, "level at current price must be placed as neither side")
	assert.True(t, result.Buys[0].Price.Equal(dec(t, "43000")))
	assert.True(t, result.Sells[0].Price.Equal(dec(t, "47000")))

	for _, req := range ex.placed {
		assert.Equal(t, core.Limit, req.Type)
		assert.Equal(t, core.GTC, req.TimeInForce)
		assert.True(t, req.Qty.Equal(dec(t, "0.01")))
	}
	assert.Equal(t, "BTCUSDT", result.Symbol)
	assert.True(t, result.CurrentPrice.Equal(dec(t, "45000")))
}

func TestGridContinuesPastFailingLevel(t *testing.T) {
	rejected := errors.New("rejected")
	ex := &fakeExchange{
		price:     dec(t, "45000"),
		placeErrs: map[int]error{1: rejected},
	}
	deps := testDeps(t, ex)

	result, err := Grid(context.Background(), deps, GridParams{
		Symbol:     "BTCUSDT",
		QtyPerGrid: "0.01",
		LowerPrice: "43000",
		UpperPrice: "44000",
		NumGrids:   "5",
	})
	require.NoError(t, err, "one failing level must not abort the run")

	// all five levels are below current price
	assert.Len(t, ex.placed, 5)
	assert.Len(t, result.Buys, 4)
	require.Len(t, result.Failures, 1)
	assert.True(t, result.Failures[0].Level.Equal(dec(t, "43250")))
	assert.ErrorIs(t, result.Failures[0].Err, rejected)
}

func TestGridAbortsWhenPriceFetchFails(t *testing.T) {
	fetchErr := errors.New("ticker unavailable")
	ex := &fakeExchange{priceErr: fetchErr}
	deps := testDeps(t, ex)

	_, err := Grid(context.Background(), deps, GridParams{
		Symbol:     "BTCUSDT",
		QtyPerGrid: "0.01",
		LowerPrice: "43000",
		UpperPrice: "47000",
		NumGrids:   "3",
	})
	require.ErrorIs(t, err, fetchErr)
	assert.Empty(t, ex.placed)
}

func TestGridValidation(t *testing.T) {
	tests := []struct {
		name   string
		params GridParams
	}{
		{"inverted range", GridParams{Symbol: "BTCUSDT", QtyPerGrid: "0.01", LowerPrice: "47000", UpperPrice: "43000", NumGrids: "5"}},
		{"equal bounds", GridParams{Symbol: "BTCUSDT", QtyPerGrid: "0.01", LowerPrice: "43000", UpperPrice: "43000", NumGrids: "5"}},
		{"single grid", GridParams{Symbol: "BTCUSDT", QtyPerGrid: "0.01", LowerPrice: "43000", UpperPrice: "47000", NumGrids: "1"}},
		{"zero qty", GridParams{Symbol: "BTCUSDT", QtyPerGrid: "0", LowerPrice: "43000", UpperPrice: "47000", NumGrids: "5"}},
		{"bad symbol", GridParams{Symbol: "BTC", QtyPerGrid: "0.01", LowerPrice: "43000", UpperPrice: "47000", NumGrids: "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &fakeExchange{price: dec(t, "45000")}
			deps := testDeps(t, ex)
			_, err := Grid(context.Background(), deps, tt.params)
			require.Error(t, err)
			assert.True(t, core.IsValidation(err), "want validation error, got %v", err)
			assert.Empty(t, ex.placed, "validation failures must not reach the network")
		})
	}
}
