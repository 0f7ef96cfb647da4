package log

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// Logger wraps zap.Logger so callers never import zap directly.
type Logger struct {
	l     *zap.Logger
	level Level
}

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var (
	Skip       = zap.Skip
	Binary     = zap.Binary
	Bool       = zap.Bool
	Duration   = zap.Duration
	Float64    = zap.Float64
	Float32    = zap.Float32
	Int        = zap.Int
	Int32      = zap.Int32
	Int64      = zap.Int64
	Uint       = zap.Uint
	Uint32     = zap.Uint32
	String     = zap.String
	Stringer   = zap.Stringer
	Time       = zap.Time
	Any        = zap.Any
	ErrorField = zap.Error

	WithCaller    = zap.WithCaller
	AddStacktrace = zap.AddStacktrace
	AddCallerSkip = zap.AddCallerSkip
)

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

// New creates a Logger with a JSON encoder writing to w.
func New(w io.Writer, level Level, opts ...Option) *Logger {
	if w == nil {
		w = os.Stderr
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.AddSync(w),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// DevLogger creates a Logger with a console encoder, meant for local use.
func DevLogger(w io.Writer, level Level, opts ...Option) *Logger {
	if w == nil {
		w = os.Stderr
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		level,
	)
	return &Logger{l: zap.New(core, opts...), level: level}
}

// NewWithFilters wraps the logger core with zapfilter rules
// (for example "debug:scoring* info:*").
func NewWithFilters(base *Logger, rules string) (*Logger, error) {
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	filtered := base.l.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}))
	return &Logger{l: filtered, level: base.level}, nil
}

func (log *Logger) Named(name string) *Logger {
	return &Logger{l: log.l.Named(name), level: log.level}
}

func (log *Logger) WithOptions(opts ...Option) *Logger {
	return &Logger{l: log.l.WithOptions(opts...), level: log.level}
}

func (log *Logger) DebugEnabled() bool {
	return log.level.Enabled(DebugLevel)
}

func (log *Logger) Debug(msg string, fields ...Field) { log.l.Debug(msg, fields...) }
func (log *Logger) Info(msg string, fields ...Field)  { log.l.Info(msg, fields...) }
func (log *Logger) Warn(msg string, fields ...Field)  { log.l.Warn(msg, fields...) }
func (log *Logger) Error(msg string, fields ...Field) { log.l.Error(msg, fields...) }
func (log *Logger) Fatal(msg string, fields ...Field) { log.l.Fatal(msg, fields...) }

func (log *Logger) Sync() error { return log.l.Sync() }

var std = DevLogger(os.Stderr, InfoLevel)

func Default() *Logger { return std }

// ResetDefault replaces the package level default logger.
func ResetDefault(l *Logger) {
	std = l
}

func Debug(msg string, fields ...Field) { std.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { std.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { std.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { std.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { std.Fatal(msg, fields...) }

type ctxKey struct{}

// AddToContext stores the logger in the context.
func AddToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// GetFromContext returns the logger stored in the context or the default.
func GetFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return std
}
