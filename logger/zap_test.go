package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newTestZap(buf *bytes.Buffer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

func TestNewZapLogger(t *testing.T) {
	var buf bytes.Buffer

	zapAdapter := NewZapLogger(newTestZap(&buf), Config{LogLevel: Info, Colorful: true})

	require.NotNil(t, zapAdapter)
	assert.Equal(t, Info, zapAdapter.(*ZapLogger).LogLevel)
}

func TestZapLogger_LogMode(t *testing.T) {
	logger := NewZapLogger(zap.NewNop(), Config{
		LogLevel: Error,
	})

	// Test changing log mode
	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*ZapLogger).LogLevel)

	// Test that original is not affected
	assert.Equal(t, Error, logger.(*ZapLogger).LogLevel)
}

func TestZapLogger_LogLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	logger := NewZapLogger(newTestZap(&buf), Config{
		LogLevel: Info,
	})

	tests := []struct {
		name   string
		level  LogLevel
		logMsg string
	}{
		{"Info level", Info, "column %s defaults to string"},
		{"Warn level", Warn, "column %s defaults to string"},
		{"Error level", Error, "column %s defaults to string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			logger := logger.LogMode(tt.level)

			switch tt.level {
			case Info:
				logger.Info(ctx, tt.logMsg, "ORDERS.note")
			case Warn:
				logger.Warn(ctx, tt.logMsg, "ORDERS.note")
			case Error:
				logger.Error(ctx, tt.logMsg, "ORDERS.note")
			}

			output := buf.String()
			assert.Contains(t, output, "column ORDERS.note defaults to string")
			assert.Contains(t, output, "zap_test.go")
		})
	}
}

func TestZapLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(newTestZap(&buf), Config{LogLevel: Silent})

	logger.Error(context.Background(), "should not appear")
	assert.Empty(t, buf.String())
}

func TestZapLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(newTestZap(&buf), Config{LogLevel: Info}).(*ZapLogger)

	logger.WithField("table", "ORDERS").Info(context.Background(), "created")
	assert.Contains(t, buf.String(), `"table":"ORDERS"`)
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DPanicLevel, ZapLevel(Silent))
	assert.Equal(t, zapcore.ErrorLevel, ZapLevel(Error))
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(Warn))
	assert.Equal(t, zapcore.InfoLevel, ZapLevel(Info))
}
