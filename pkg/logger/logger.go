package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. Used as the default until a real logger is injected.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a JSON production logger, or a console development logger
// when env is "local" or "development".
func New(env string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch env {
	case "local", "development":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar().With("service", "mflix"), nil
}
