package logger

import (
	"go.uber.org/zap"
)

// New builds a production zap logger at the given textual level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl

	zl, err := zapcfg.Build()
	if err != nil {
		return nil, err
	}
	return zl, nil
}
