package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusLogger(t *testing.T) {
	var buf bytes.Buffer

	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)

	logrusAdapter := NewLogrusLogger(logrusLogger, Config{LogLevel: Info, Colorful: true})

	require.NotNil(t, logrusAdapter)
	assert.Equal(t, Info, logrusAdapter.(*LogrusLogger).LogLevel)
}

func TestLogrusLogger_LogMode(t *testing.T) {
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&bytes.Buffer{})

	logger := NewLogrusLogger(logrusLogger, Config{
		LogLevel: Error,
	})

	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*LogrusLogger).LogLevel)
	assert.Equal(t, Error, logger.(*LogrusLogger).LogLevel)
}

func TestLogrusLogger_LogLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetFormatter(&logrus.JSONFormatter{})
	logger := NewLogrusLogger(logrusLogger, Config{
		LogLevel: Info,
	})

	tests := []struct {
		name     string
		level    LogLevel
		expected string
	}{
		{"Info level", Info, `"level":"info"`},
		{"Warn level", Warn, `"level":"warning"`},
		{"Error level", Error, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			switch tt.level {
			case Info:
				logger.Info(ctx, "foreign key %s added", "fk_line_items_order_id")
			case Warn:
				logger.Warn(ctx, "foreign key %s added", "fk_line_items_order_id")
			case Error:
				logger.Error(ctx, "foreign key %s added", "fk_line_items_order_id")
			}

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, "foreign key fk_line_items_order_id added")
			assert.Contains(t, output, "logrus_test.go")
		})
	}
}
