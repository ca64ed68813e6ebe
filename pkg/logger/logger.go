package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// Options controls how the process logger is built. Environment variables
// LOG_LEVEL and JSON_LOG take precedence over the configured values.
type Options struct {
	Level string
	JSON  bool
}

var (
	once    sync.Once
	logger  *zap.SugaredLogger
	optsMu  sync.Mutex
	options = Options{Level: "info"}
)

// Configure sets the options used when the logger is first built. It has no
// effect once Get has been called.
func Configure(opts Options) {
	optsMu.Lock()
	defer optsMu.Unlock()
	options = opts
}

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		optsMu.Lock()
		opts := options
		optsMu.Unlock()

		if env := os.Getenv("LOG_LEVEL"); env != "" {
			opts.Level = env
		}
		if os.Getenv("JSON_LOG") != "" {
			opts.JSON = true
		}

		logger = zap.New(newCore(opts, zapcore.AddSync(os.Stderr))).Sugar()
	})

	return logger
}

func newCore(opts Options, out zapcore.WriteSyncer) zapcore.Core {
	level := zap.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			log.Println(
				fmt.Errorf("invalid level, defaulting to INFO: %w", err),
			)
		} else {
			level = parsed
		}
	}

	encoder := zapcore.NewConsoleEncoder(developmentEncoderConfig())
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(productionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))

	return core.With(buildInfoFields())
}

func productionEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func developmentEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

func buildInfoFields() []zapcore.Field {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
	for _, v := range buildInfo.Settings {
		if v.Key == "vcs.revision" && len(v.Value) >= 7 {
			fields = append(fields, zap.String("git_revision", v.Value[0:7]))
			break
		}
	}

	return fields
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return l.With(with...)
	}

	return Get().With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
