package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures-orders/internal/core"
)

func TestOcoPlacesReduceOnlyPairOnCloseSide(t *testing.T) {
	ex := &fakeExchange{}
	deps := testDeps(t, ex)

	result, err := Oco(context.Background(), deps, OcoParams{
		Symbol:         "BTCUSDT",
		Side:           "BUY",
		Qty:            "0.01",
		Price:          "46000",
		StopPrice:      "43000",
		StopLimitPrice: "42900",
	})
	require.NoError(t, err)
	require.Len(t, ex.placed, 2)

	assert.Equal(t, core.Sell, result.CloseSide)

	tp := ex.placed[0]
	assert.Equal(t, core.TakeProfit, tp.Type)
	assert.Equal(t, core.Sell, tp.Side)
	assert.True(t, tp.ReduceOnly)
	assert.Equal(t, core.GTC, tp.TimeInForce)
	assert.True(t, tp.Price.Equal(dec(t, "46000")))
	assert.True(t, tp.StopPrice.Equal(dec(t, "46000")), "take-profit trigger equals its limit price")

	sl := ex.placed[1]
	assert.Equal(t, core.Stop, sl.Type)
	assert.Equal(t, core.Sell, sl.Side)
	assert.True(t, sl.ReduceOnly)
	assert.True(t, sl.StopPrice.Equal(dec(t, "43000")))
	assert.True(t, sl.Price.Equal(dec(t, "42900")))
	assert.True(t, sl.Qty.Equal(tp.Qty))
}

func TestOcoSellPositionClosesWithBuys(t *testing.T) {
	ex := &fakeExchange{}
	deps := testDeps(t, ex)

	result, err := Oco(context.Background(), deps, OcoParams{
		Symbol:         "ETHUSDT",
		Side:           "SELL",
		Qty:            "0.5",
		Price:          "2000",
		StopPrice:      "2600",
		StopLimitPrice: "2610",
	})
	require.NoError(t, err)

	assert.Equal(t, core.Buy, result.CloseSide)
	for _, req := range ex.placed {
		assert.Equal(t, core.Buy, req.Side)
	}
}

func TestOcoStopsAfterTakeProfitFailure(t *testing.T) {
	tpErr := errors.New("rejected")
	ex := &fakeExchange{placeErrs: map[int]error{0: tpErr}}
	deps := testDeps(t, ex)

	_, err := Oco(context.Background(), deps, OcoParams{
		Symbol:         "BTCUSDT",
		Side:           "BUY",
		Qty:            "0.01",
		Price:          "46000",
		StopPrice:      "43000",
		StopLimitPrice: "42900",
	})
	require.ErrorIs(t, err, tpErr)
	assert.Len(t, ex.placed, 1, "stop leg must never be attempted after the take-profit leg fails")
}

func TestOcoStopLegFailurePropagates(t *testing.T) {
	slErr := errors.New("rejected")
	ex := &fakeExchange{placeErrs: map[int]error{1: slErr}}
	deps := testDeps(t, ex)

	_, err := Oco(context.Background(), deps, OcoParams{
		Symbol:         "BTCUSDT",
		Side:           "BUY",
		Qty:            "0.01",
		Price:          "46000",
		StopPrice:      "43000",
		StopLimitPrice: "42900",
	})
	require.ErrorIs(t, err, slErr)
	assert.Len(t, ex.placed, 2)
}

func TestOcoValidation(t *testing.T) {
	ex := &fakeExchange{}
	deps := testDeps(t, ex)

	_, err := Oco(context.Background(), deps, OcoParams{
		Symbol:         "BTCUSDT",
		Side:           "BUY",
		Qty:            "0.01",
		Price:          "46000",
		StopPrice:      "0",
		StopLimitPrice: "42900",
	})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))
	assert.Empty(t, ex.placed)
}
