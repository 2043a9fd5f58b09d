package strategy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-orders/internal/core"
)

func TestTwapSlicesSumToTotal(t *testing.T) {
	ex := &fakeExchange{avgPrice: dec(t, "45000")}
	deps := testDeps(t, ex)
	deps.Sleep = func(context.Context, time.Duration) error { return nil }

	result, err := Twap(context.Background(), deps, TwapParams{
		Symbol:      "btcusdt",
		Side:        "buy",
		TotalQty:    "0.1",
		NumOrders:   "10",
		IntervalSec: "30",
	})
	require.NoError(t, err)

	require.Len(t, result.Slices, 10)
	assert.Equal(t, 10, result.ExecutedCount())

	sum := decimal.Zero
	for _, req := range ex.placed {
		assert.Equal(t, core.Market, req.Type)
		assert.Equal(t, core.Buy, req.Side)
		sum = sum.Add(req.Qty)
	}
	tolerance := dec(t, "0.0000001")
	assert.True(t, sum.Sub(dec(t, "0.1")).Abs().Cmp(tolerance) < 0,
		"slice quantities sum = %s, want 0.1", sum)
}

func TestTwapPausesBetweenSlicesButNotAfterLast(t *testing.T) {
	ex := &fakeExchange{avgPrice: dec(t, "45000")}
	deps := testDeps(t, ex)
	var waits []time.Duration
	deps.Sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	_, err := Twap(context.Background(), deps, TwapParams{
		Symbol:      "BTCUSDT",
		Side:        "SELL",
		TotalQty:    "0.03",
		NumOrders:   "3",
		IntervalSec: "5",
	})
	require.NoError(t, err)

	require.Len(t, waits, 2, "no pause after the last slice")
	for _, d := range waits {
		assert.Equal(t, 5*time.Second, d)
	}
}

func TestTwapContinuesPastFailingSlice(t *testing.T) {
	sliceErr := errors.New("rate limited")
	ex := &fakeExchange{
		avgPrice:  dec(t, "45000"),
		placeErrs: map[int]error{1: sliceErr},
	}
	deps := testDeps(t, ex)
	deps.Sleep = func(context.Context, time.Duration) error { return nil }

	result, err := Twap(context.Background(), deps, TwapParams{
		Symbol:      "BTCUSDT",
		Side:        "BUY",
		TotalQty:    "0.3",
		NumOrders:   "3",
		IntervalSec: "1",
	})
	require.NoError(t, err)

	assert.Len(t, ex.placed, 3)
	assert.Equal(t, 2, result.ExecutedCount())
	require.Len(t, result.Slices, 3)
	assert.ErrorIs(t, result.Slices[1].Err, sliceErr)
}

func TestTwapInterruptedPauseAbortsRemainingSlices(t *testing.T) {
	ex := &fakeExchange{avgPrice: dec(t, "45000")}
	deps := testDeps(t, ex)
	deps.Sleep = func(context.Context, time.Duration) error { return context.Canceled }

	result, err := Twap(context.Background(), deps, TwapParams{
		Symbol:      "BTCUSDT",
		Side:        "BUY",
		TotalQty:    "0.3",
		NumOrders:   "3",
		IntervalSec: "10",
	})
	require.ErrorIs(t, err, context.Canceled)

	// the slice before the first pause executed; nothing after it
	assert.Len(t, ex.placed, 1)
	assert.Equal(t, 1, result.ExecutedCount())
}

func TestTwapAvgPriceIsQuantityWeighted(t *testing.T) {
	result := TwapResult{
		Slices: []TwapSlice{
			{Order: core.Order{ExecutedQty: decimal.RequireFromString("0.02"), AvgPrice: decimal.RequireFromString("45000")}},
			{Order: core.Order{ExecutedQty: decimal.RequireFromString("0.01"), AvgPrice: decimal.RequireFromString("46500")}},
			{Err: errors.New("failed slice is ignored")},
			{Order: core.Order{ExecutedQty: decimal.Zero, AvgPrice: decimal.Zero}}, // no fill report
		},
	}

	avg, ok := result.AvgPrice()
	require.True(t, ok)
	// (0.02*45000 + 0.01*46500) / 0.03 = 45500
	assert.True(t, avg.Equal(decimal.RequireFromString("45500")), "avg = %s, want 45500", avg)
}

func TestTwapAvgPriceWithoutFillsReportsNone(t *testing.T) {
	result := TwapResult{Slices: []TwapSlice{{Err: errors.New("all failed")}}}
	_, ok := result.AvgPrice()
	assert.False(t, ok)
}

func TestTwapValidation(t *testing.T) {
	tests := []struct {
		name   string
		params TwapParams
	}{
		{"bad side", TwapParams{Symbol: "BTCUSDT", Side: "HOLD", TotalQty: "0.1", NumOrders: "5", IntervalSec: "10"}},
		{"zero orders", TwapParams{Symbol: "BTCUSDT", Side: "BUY", TotalQty: "0.1", NumOrders: "0", IntervalSec: "10"}},
		{"fractional orders", TwapParams{Symbol: "BTCUSDT", Side: "BUY", TotalQty: "0.1", NumOrders: "2.5", IntervalSec: "10"}},
		{"zero interval", TwapParams{Symbol: "BTCUSDT", Side: "BUY", TotalQty: "0.1", NumOrders: "5", IntervalSec: "0"}},
		{"negative qty", TwapParams{Symbol: "BTCUSDT", Side: "BUY", TotalQty: "-1", NumOrders: "5", IntervalSec: "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &fakeExchange{}
			deps := testDeps(t, ex)
			_, err := Twap(context.Background(), deps, tt.params)
			require.Error(t, err)
			assert.True(t, core.IsValidation(err), "want validation error, got %v", err)
			assert.Empty(t, ex.placed)
		})
	}
}
