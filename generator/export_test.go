package generator

import (
	"context"
	"fmt"

	"gorm.io/schemagen/logger"
)

// LogRecorder keeps formatted log messages
type LogRecorder struct {
	Infos, Warns, Errors []string
}

func (l *LogRecorder) LogMode(logger.LogLevel) logger.Interface { return l }

func (l *LogRecorder) Info(_ context.Context, msg string, data ...interface{}) {
	l.Infos = append(l.Infos, fmt.Sprintf(msg, data...))
}

func (l *LogRecorder) Warn(_ context.Context, msg string, data ...interface{}) {
	l.Warns = append(l.Warns, fmt.Sprintf(msg, data...))
}

func (l *LogRecorder) Error(_ context.Context, msg string, data ...interface{}) {
	l.Errors = append(l.Errors, fmt.Sprintf(msg, data...))
}

func newTestRun(opts ...ConfigOption) (*run, *LogRecorder) {
	recorder := &LogRecorder{}
	return New(append([]ConfigOption{WithLogger(recorder)}, opts...)...).newRun(context.Background()), recorder
}
