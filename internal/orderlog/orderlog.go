// Package orderlog writes one structured entry per order attempt. Entries go
// to a JSON log file at debug level and are mirrored to the console at info
// level.
package orderlog

import (
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"futures-orders/internal/core"
)

type Logger struct {
	z    *zap.Logger
	file *os.File
}

func New(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	tee := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), zap.DebugLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(os.Stderr), zap.InfoLevel),
	)
	return &Logger{z: zap.New(tee), file: file}, nil
}

func (l *Logger) Close() {
	_ = l.z.Sync()
	_ = l.file.Close()
}

func (l *Logger) Info(msg string, fields ...zap.Field)  { l.z.Info(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.z.Error(msg, fields...) }

// OrderAttempt carries the context of one order submission. Price and
// StopPrice are zero when the order type does not use them.
type OrderAttempt struct {
	Type      string
	Symbol    string
	Side      core.Side
	Qty       decimal.Decimal
	Price     decimal.Decimal
	StopPrice decimal.Decimal
}

func (a OrderAttempt) fields() []zap.Field {
	fields := []zap.Field{
		zap.String("order_type", a.Type),
		zap.String("symbol", a.Symbol),
		zap.String("side", string(a.Side)),
		zap.String("qty", a.Qty.String()),
	}
	if a.Price.Cmp(decimal.Zero) > 0 {
		fields = append(fields, zap.String("price", a.Price.String()))
	}
	if a.StopPrice.Cmp(decimal.Zero) > 0 {
		fields = append(fields, zap.String("stop_price", a.StopPrice.String()))
	}
	return fields
}

func (l *Logger) OrderPlaced(a OrderAttempt, placed core.Order) {
	fields := append(a.fields(),
		zap.String("order_id", placed.ID),
		zap.String("status", string(placed.Status)),
	)
	l.z.Info("order placed", fields...)
}

func (l *Logger) OrderFailed(a OrderAttempt, err error) {
	l.z.Error("order failed", append(a.fields(), zap.Error(err))...)
}
