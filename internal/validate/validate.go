// Package validate holds the pure input checks shared by every tool. All of
// them run before any network call and return core.ValidationError on bad
// input.
package validate

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"futures-orders/internal/core"
)

// Symbol normalizes a trading symbol to uppercase and checks the USDT-M
// futures format.
func Symbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", core.Validationf("symbol must be a non-empty string")
	}
	for _, r := range symbol {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return "", core.Validationf("invalid symbol format: %s", symbol)
	}
	if !strings.HasSuffix(symbol, "USDT") {
		return "", core.Validationf("symbol must end with USDT for USDT-M futures: %s", symbol)
	}
	return symbol, nil
}

// Side normalizes an order side to uppercase and requires BUY or SELL.
func Side(raw string) (core.Side, error) {
	side := strings.ToUpper(strings.TrimSpace(raw))
	if side == "" {
		return "", core.Validationf("side must be a non-empty string")
	}
	if side != string(core.Buy) && side != string(core.Sell) {
		return "", core.Validationf("side must be BUY or SELL, got: %s", side)
	}
	return core.Side(side), nil
}

// Quantity parses an order quantity and requires it to be > 0.
func Quantity(raw string) (decimal.Decimal, error) {
	qty, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, core.Validationf("quantity must be a number, got: %s", raw)
	}
	if qty.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, core.Validationf("quantity must be greater than 0, got: %s", qty.String())
	}
	return qty, nil
}

// Price parses a price value and requires it to be > 0. The label names the
// price in error messages ("limit price", "stop price", ...).
func Price(raw, label string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, core.Validationf("%s must be a number, got: %s", label, raw)
	}
	if price.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, core.Validationf("%s must be greater than 0, got: %s", label, price.String())
	}
	return price, nil
}

// PositiveInt parses an integer value and requires it to be > 0.
func PositiveInt(raw, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, core.Validationf("%s must be an integer, got: %s", name, raw)
	}
	if v <= 0 {
		return 0, core.Validationf("%s must be greater than 0, got: %d", name, v)
	}
	return v, nil
}

// StopLimitPrices checks the trigger/limit relationship of a stop-limit
// order. A buy stop triggers at or above its limit so it chases price upward;
// a sell stop triggers at or below so it chases price downward.
func StopLimitPrices(stopPrice, limitPrice decimal.Decimal, side core.Side) error {
	switch side {
	case core.Buy:
		if stopPrice.Cmp(limitPrice) < 0 {
			return core.Validationf("for BUY stop-limit: stop price (%s) must be >= limit price (%s)",
				stopPrice.String(), limitPrice.String())
		}
	case core.Sell:
		if stopPrice.Cmp(limitPrice) > 0 {
			return core.Validationf("for SELL stop-limit: stop price (%s) must be <= limit price (%s)",
				stopPrice.String(), limitPrice.String())
		}
	}
	return nil
}
