package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs the process-wide zap logger. Diagnostics
// are bare console messages routed to stderr: the interactive menu owns
// stdout, and a warning must never land inside a rendered menu or document.
func NewApplicationLogger() (*zap.Logger, error) {
	encoderConfiguration := zapcore.EncoderConfig{
		MessageKey:     "message",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	loggerConfiguration := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapcore.InfoLevel),
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoderConfiguration,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	return loggerConfiguration.Build()
}
