package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until InitLogger runs, so
// packages and tests can log without setup.
var Log = zap.NewNop().Sugar()

// InitLogger builds the global logger: JSON at info level in production,
// console output at debug level everywhere else.
func InitLogger(appEnv string) (*zap.Logger, error) {
	var cfg zap.Config
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	Log = logger.Sugar()
	zap.ReplaceGlobals(logger)
	return logger, nil
}
