package keenlog

import (
	"fmt"
	"sync/atomic"

	"github.com/maksimkurb/keen-log/src/internal/config"
	"github.com/maksimkurb/keen-log/src/internal/dispatch"
	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// Logger emits events through its own configuration store.
type Logger struct {
	engine *dispatch.Engine
}

// NewLogger returns a logger dispatching against store.
func NewLogger(store *config.Store, opts ...dispatch.Option) *Logger {
	return &Logger{engine: dispatch.New(store, opts...)}
}

var std atomic.Pointer[Logger]

func init() {
	std.Store(NewLogger(config.NewStore(config.Default())))
}

// DefaultLogger returns the logger used by the package-level functions.
func DefaultLogger() *Logger {
	return std.Load()
}

// SetDefault makes l the logger used by the package-level functions.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// New returns a builder that publishes into the default logger's store.
func New() *config.Builder {
	return DefaultLogger().New()
}

// New returns a builder that publishes into l's store.
func (l *Logger) New() *config.Builder {
	return config.NewBuilder(l.engine.Store())
}

// Store returns the configuration store of l.
func (l *Logger) Store() *config.Store {
	return l.engine.Store()
}

// Infof logs at Info severity.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(severity.Info, "Infof", format, args)
}

// Warnf logs at Warn severity.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(severity.Warn, "Warnf", format, args)
}

// Errorf logs at Error severity.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(severity.Error, "Errorf", format, args)
}

// Fatalf logs at Fatal severity. It does not exit.
func (l *Logger) Fatalf(format string, args ...any) {
	l.logf(severity.Fatal, "Fatalf", format, args)
}

// Emit logs msg verbatim at sev. An invalid sev produces the FATAL!!!
// fallback line on stdout.
func (l *Logger) Emit(sev severity.Severity, msg string) {
	l.engine.Dispatch(sev, msg, dispatch.Caller(1, "Emit"))
}

// logf must be called directly from an entry point so that the call site is
// two frames up.
func (l *Logger) logf(sev severity.Severity, entry, format string, args []any) {
	l.engine.Dispatch(sev, fmt.Sprintf(format, args...), dispatch.Caller(2, entry))
}

// Infof logs at Info severity through the default logger.
func Infof(format string, args ...any) {
	DefaultLogger().logf(severity.Info, "Infof", format, args)
}

// Warnf logs at Warn severity through the default logger.
func Warnf(format string, args ...any) {
	DefaultLogger().logf(severity.Warn, "Warnf", format, args)
}

// Errorf logs at Error severity through the default logger.
func Errorf(format string, args ...any) {
	DefaultLogger().logf(severity.Error, "Errorf", format, args)
}

// Fatalf logs at Fatal severity through the default logger. It does not exit.
func Fatalf(format string, args ...any) {
	DefaultLogger().logf(severity.Fatal, "Fatalf", format, args)
}
