package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

type OrderType string

type OrderStatus string

type TimeInForce string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

const (
	Market     OrderType = "MARKET"
	Limit      OrderType = "LIMIT"
	Stop       OrderType = "STOP"
	TakeProfit OrderType = "TAKE_PROFIT"
)

const (
	GTC TimeInForce = "GTC"
)

const (
	OrderNew             OrderStatus = "NEW"
	OrderPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderFilled          OrderStatus = "FILLED"
	OrderCanceled        OrderStatus = "CANCELED"
	OrderRejected        OrderStatus = "REJECTED"
	OrderExpired         OrderStatus = "EXPIRED"
)

// Opposite returns the side that closes a position opened on s.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// OrderRequest is a single order submission. Price is set for LIMIT, STOP and
// TAKE_PROFIT orders; StopPrice only for the trigger types.
type OrderRequest struct {
	Symbol      string
	Side        Side
	Type        OrderType
	Qty         decimal.Decimal
	Price       decimal.Decimal
	StopPrice   decimal.Decimal
	TimeInForce TimeInForce
	ReduceOnly  bool
}

type Order struct {
	ID          string
	ClientID    string
	Symbol      string
	Side        Side
	Type        OrderType
	Price       decimal.Decimal
	StopPrice   decimal.Decimal
	Qty         decimal.Decimal
	ExecutedQty decimal.Decimal
	AvgPrice    decimal.Decimal
	Status      OrderStatus
	ReduceOnly  bool
	CreatedAt   time.Time
}
