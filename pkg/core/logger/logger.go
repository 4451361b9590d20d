package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(conf Config) (*zap.Logger, zap.AtomicLevel, error) {
	if err := conf.Validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("logger configuration validation failed: %w", err)
	}

	var cfg zap.Config

	if conf.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	atomicLevel := zap.NewAtomicLevelAt(conf.Level)
	cfg.Level = atomicLevel

	// ISO8601 timestamps regardless of encoding
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if len(conf.OutputPaths) > 0 {
		cfg.OutputPaths = conf.OutputPaths
	}

	if len(conf.ErrorOutputPaths) > 0 {
		cfg.ErrorOutputPaths = conf.ErrorOutputPaths
	}

	logger, err := cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(conf.StacktraceLevel),
	)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	zap.ReplaceGlobals(logger)

	logger.Info("logger initialized",
		zap.String("level", conf.Level.String()),
		zap.Bool("development", conf.Development),
	)

	return logger, atomicLevel, nil
}
