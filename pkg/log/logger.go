package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// L is the global structured logger.
	L *zap.Logger
	// S is the global sugared logger, for printf-style convenience.
	S *zap.SugaredLogger
)

// Init initializes the global loggers L and S.
// logLevel may be "debug", "info", "warn", "error", "dpanic", "panic", "fatal".
// env selects the encoder: "development" gets the console encoder, anything
// else gets the production JSON encoder.
func Init(logLevel string, env string) {
	var cfg zap.Config
	if strings.ToLower(env) == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Logging is fundamental; give up early if it cannot be constructed.
		panic(fmt.Sprintf("failed to build zap logger: %v", err))
	}

	L = logger
	S = logger.Sugar()

	zap.ReplaceGlobals(L)
}

// Sync flushes any buffered log entries. Call from a defer in main.
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}

func init() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	appEnv := os.Getenv("ENVIRONMENT")
	if appEnv == "" {
		appEnv = "development"
	}
	Init(logLevel, appEnv)
}
