package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the sugared logger used across the server packages.
// LAUNCHPAD_LOG_LEVEL (debug, info, warn, error) overrides the default debug level.
func NewLogger() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.DisableStacktrace = true

	if envLevel := os.Getenv("LAUNCHPAD_LOG_LEVEL"); envLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(envLevel)); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := config.Build()
	if err != nil {
		log.Panic(err)
	}

	// flushes buffer, if any
	defer logger.Sync()

	return logger.Sugar()
}
