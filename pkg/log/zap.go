package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig mirrors the logger section of config.yaml.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey string

// RequestIDKey is the context key the HTTP layer stores the request ID under.
const RequestIDKey ctxKey = "request_id"

// Init builds a zap-backed Logger. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.with(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Debugf(format, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.with(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.with(ctx).Infof(format, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.with(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Warnf(format, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.with(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Errorf(format, args...)
}
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.with(ctx).DPanic(args...) }
func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).DPanicf(format, args...)
}
func (l *zapLogger) Panic(ctx context.Context, args ...any) { l.with(ctx).Panic(args...) }
func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Panicf(format, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.with(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Fatalf(format, args...)
}
