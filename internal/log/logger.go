package log

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _logger *zap.Logger
var defaultlogger *zap.Logger

type contextKey int

const (
	contextKeyFields contextKey = iota
)

// Field keys shared by all the components
const (
	KeyFitID     = "fit_id"
	KeyModel     = "model"
	KeyTiePoints = "tie_points"
	KeyURI       = "uri"
)

func init() {
	Structured()
}

func setLogger(l *zap.Logger) {
	defaultlogger = l
}
func resetLogger() {
	defaultlogger = _logger
}

// level returns the level set by the LOGLEVEL environment variable (default: debug)
func level() zap.AtomicLevel {
	if lvl := os.Getenv("LOGLEVEL"); lvl != "" {
		l := zap.NewAtomicLevel()
		if err := l.UnmarshalText([]byte(lvl)); err == nil {
			return l
		}
	}
	return zap.NewAtomicLevelAt(zap.DebugLevel)
}

func build(cfg zap.Config, enc zapcore.EncoderConfig) {
	enc.LevelKey = "severity"
	enc.StacktraceKey = ""
	enc.MessageKey = "message"
	cfg.EncoderConfig = enc
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Level = level()
	var err error
	_logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
	defaultlogger = _logger
}

// Structured sets output to be JSON encoded
func Structured() {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	if os.Getenv("LOG_NO_TIMESTAMP") != "" {
		// log collector handles timestamps
		enc.TimeKey = ""
	} else {
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	build(zap.NewProductionConfig(), enc)
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02T15:04:05.000"))
}

// Console sets output to be human-readable
func Console() {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = timeEncoder
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	build(zap.NewDevelopmentConfig(), enc)
}

// Logger returns a logger that will print fields previously added to the context
func Logger(ctx context.Context) *zap.Logger {
	if flds := fields(ctx); flds != nil {
		return defaultlogger.With(flds...)
	}
	return defaultlogger
}

func fields(ctx context.Context) []zap.Field {
	if flds := ctx.Value(contextKeyFields); flds != nil {
		return flds.([]zap.Field)
	}
	return nil
}

// With adds a key=value field to the returned context
func With(ctx context.Context, key string, value interface{}) context.Context {
	return WithFields(ctx, zap.Any(key, value))
}

// WithFit adds the fit identifier and its model to the returned context
func WithFit(ctx context.Context, id fmt.Stringer, model string) context.Context {
	return WithFields(ctx, zap.Stringer(KeyFitID, id), zap.String(KeyModel, model))
}

// CopyContext returns a context derived from dst that contains the eventual logging
// keys that are contained in ctx
func CopyContext(ctx context.Context, dst context.Context) context.Context {
	cflds := fields(ctx)
	if cflds == nil {
		return dst
	}
	return context.WithValue(dst, contextKeyFields, appendFields(cflds, fields(dst)...))
}

// WithFields adds fields to the returned context
func WithFields(ctx context.Context, flds ...zapcore.Field) context.Context {
	return context.WithValue(ctx, contextKeyFields, appendFields(fields(ctx), flds...))
}

// appendFields never writes in the backing array of flds, which may be shared by several contexts
func appendFields(flds []zap.Field, others ...zap.Field) []zap.Field {
	res := make([]zap.Field, 0, len(flds)+len(others))
	return append(append(res, flds...), others...)
}

// Printf logs at Info level
func Printf(format string, v ...interface{}) {
	defaultlogger.Sugar().Infof(format, v...)
}

func Fatal(v ...interface{}) {
	defaultlogger.Fatal(fmt.Sprint(v...))
}
func Fatalf(format string, v ...interface{}) {
	defaultlogger.Sugar().Fatalf(format, v...)
}
