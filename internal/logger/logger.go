package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvKey      = "ASTRO_ENV"
	LevelEnvKey = "ASTRO_LOG_LEVEL"
	ServiceName = "astro"
)

// New builds the process logger. ASTRO_ENV=dev gives the console logger;
// anything else gives JSON tagged with the service and env. ASTRO_LOG_LEVEL
// overrides the level in both.
func New() *zap.SugaredLogger {
	env := strings.ToLower(os.Getenv(EnvKey))
	level, err := levelFromEnv()
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	cfg := zap.NewProductionConfig()
	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.InitialFields = map[string]interface{}{
			"service": ServiceName,
			EnvKey:    env,
		}
	}
	if level != nil {
		cfg.Level = zap.NewAtomicLevelAt(*level)
	}

	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

// levelFromEnv is nil when ASTRO_LOG_LEVEL is unset.
func levelFromEnv() (*zapcore.Level, error) {
	raw := os.Getenv(LevelEnvKey)
	if raw == "" {
		return nil, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", LevelEnvKey, raw, err)
	}
	return &level, nil
}

type contextKey string

const ContextKey contextKey = "LOGGER"

func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, logger)
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok || logger == nil {
		logger = zap.S()
		logger.Warn("no logger found in ctx - using global logger")
	}
	return logger
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
