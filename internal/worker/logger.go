package worker

import (
	"fmt"

	"github.com/fanxi-showcase/internal/logger"

	"go.uber.org/zap"
)

// asynqLogger 将 asynq 内部日志转发到 zap
type asynqLogger struct {
	sugar *zap.SugaredLogger
}

func newAsynqLogger() *asynqLogger {
	return &asynqLogger{sugar: logger.SW("component", "asynq")}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.sugar.Debugw(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.sugar.Infow(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.sugar.Warnw(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.sugar.Errorw(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.sugar.Fatalw(fmt.Sprint(args...))
}
