package binance

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
)

// MarkPriceStream reads the per-symbol mark price feed. The exchange pushes
// one event per second on the @markPrice@1s stream.
type MarkPriceStream struct {
	conn *websocket.Conn
}

type MarkPrice struct {
	Symbol      string
	MarkPrice   decimal.Decimal
	IndexPrice  decimal.Decimal
	FundingRate decimal.Decimal
	NextFunding time.Time
	EventTime   time.Time
}

type markPriceEvent struct {
	EventType       string `json:"e"`
	EventTime       int64  `json:"E"`
	Symbol          string `json:"s"`
	MarkPrice       string `json:"p"`
	IndexPrice      string `json:"i"`
	FundingRate     string `json:"r"`
	NextFundingTime int64  `json:"T"`
}

func (c *Client) NewMarkPriceStream(ctx context.Context, symbol string) (*MarkPriceStream, error) {
	if c.wsBaseURL == "" {
		return nil, errors.New("ws base url required")
	}
	endpoint := c.wsBaseURL + "/ws/" + strings.ToLower(symbol) + "@markPrice@1s"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return &MarkPriceStream{conn: conn}, nil
}

// Updates delivers mark price events until the context is cancelled or the
// connection drops. Both channels are closed when the reader stops.
func (s *MarkPriceStream) Updates(ctx context.Context) (<-chan MarkPrice, <-chan error) {
	updates := make(chan MarkPrice)
	errs := make(chan error, 1)
	go func() {
		<-ctx.Done()
		_ = s.conn.Close()
	}()
	go func() {
		defer close(updates)
		defer close(errs)
		for {
			_, msg, err := s.conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					errs <- err
				}
				return
			}
			var ev markPriceEvent
			if err := json.Unmarshal(msg, &ev); err != nil || ev.EventType != "markPriceUpdate" {
				continue
			}
			mark, _ := decimal.NewFromString(ev.MarkPrice)
			index, _ := decimal.NewFromString(ev.IndexPrice)
			funding, _ := decimal.NewFromString(ev.FundingRate)
			update := MarkPrice{
				Symbol:      ev.Symbol,
				MarkPrice:   mark,
				IndexPrice:  index,
				FundingRate: funding,
				NextFunding: time.UnixMilli(ev.NextFundingTime),
				EventTime:   time.UnixMilli(ev.EventTime),
			}
			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, errs
}

func (s *MarkPriceStream) Close() error {
	return s.conn.Close()
}
