package binance

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"futures-orders/internal/core"
)

type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type APIError struct {
	Code int
	Msg  string
}

func (e APIError) Error() string {
	return "binance api error " + strconv.Itoa(e.Code) + ": " + e.Msg
}

type serverTimeResponse struct {
	ServerTime int64 `json:"serverTime"`
}

type tickerPriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

type orderResponse struct {
	Symbol        string `json:"symbol"`
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Price         string `json:"price"`
	StopPrice     string `json:"stopPrice"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	AvgPrice      string `json:"avgPrice"`
	Status        string `json:"status"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	ReduceOnly    bool   `json:"reduceOnly"`
	Time          int64  `json:"time"`
	UpdateTime    int64  `json:"updateTime"`
}

func (r orderResponse) toOrder() core.Order {
	price, _ := decimal.NewFromString(r.Price)
	stopPrice, _ := decimal.NewFromString(r.StopPrice)
	qty, _ := decimal.NewFromString(r.OrigQty)
	executedQty, _ := decimal.NewFromString(r.ExecutedQty)
	avgPrice, _ := decimal.NewFromString(r.AvgPrice)
	order := core.Order{
		ID:          strconv.FormatInt(r.OrderID, 10),
		ClientID:    r.ClientOrderID,
		Symbol:      r.Symbol,
		Side:        core.Side(r.Side),
		Type:        core.OrderType(r.Type),
		Price:       price,
		StopPrice:   stopPrice,
		Qty:         qty,
		ExecutedQty: executedQty,
		AvgPrice:    avgPrice,
		Status:      core.OrderStatus(r.Status),
		ReduceOnly:  r.ReduceOnly,
	}
	switch {
	case r.Time > 0:
		order.CreatedAt = time.UnixMilli(r.Time)
	case r.UpdateTime > 0:
		order.CreatedAt = time.UnixMilli(r.UpdateTime)
	}
	return order
}

type accountResponse struct {
	TotalWalletBalance string `json:"totalWalletBalance"`
}
