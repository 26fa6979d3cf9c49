package dispatch

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/maksimkurb/keen-log/src/internal/color"
	"github.com/maksimkurb/keen-log/src/internal/config"
	"github.com/maksimkurb/keen-log/src/internal/errors"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
	"github.com/maksimkurb/keen-log/src/internal/term"
)

// Engine dispatches events against the configuration held by a Store.
// It is safe for concurrent use.
type Engine struct {
	store     *config.Store
	stdout    io.Writer
	stderr    io.Writer
	clock     Clock
	tracer    Tracer
	sender    sink.Sender
	colorMode color.Mode
}

// Option configures an Engine.
type Option func(*Engine)

// WithStdout replaces the standard output stream.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithStderr replaces the standard error stream.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) { e.stderr = w }
}

// WithClock replaces the time source.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithTracer replaces the stack trace source used by the complex backtrace.
func WithTracer(t Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithSender replaces the webhook transport.
func WithSender(s sink.Sender) Option {
	return func(e *Engine) { e.sender = s }
}

// WithColorMode decides when console output is painted.
func WithColorMode(m color.Mode) Option {
	return func(e *Engine) { e.colorMode = m }
}

// New returns an engine reading from store. Without options it writes to
// os.Stdout/os.Stderr, uses the system clock and sends webhooks with an
// http.Client bounded by config.DefaultWebhookTimeout.
func New(store *config.Store, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clock:     SystemClock{},
		tracer:    StackTracer{},
		sender:    sink.NewHTTPSender(nil, config.DefaultWebhookTimeout),
		colorMode: color.Auto,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the store the engine reads from.
func (e *Engine) Store() *config.Store {
	return e.store
}

// Dispatch renders msg and delivers it to every sink configured for sev.
// loc is the entry-point call site used by the simple backtrace.
func (e *Engine) Dispatch(sev severity.Severity, msg string, loc Location) {
	now := e.clock.Now()

	cfg, err := e.store.Read()
	if err != nil {
		e.fallback(sev, msg, now, err)
		return
	}

	level, ok := cfg.Level(sev)
	if !ok {
		e.fallback(sev, msg, now, errors.NewInvalidSeverityError(fmt.Sprintf("cannot dispatch %s", sev)))
		return
	}

	line := FormatTimestamp(now, cfg.TimeZone) + " " + msg + e.suffix(level.Backtrace, loc)
	diagColor := cfg.Levels[severity.Count-1].Color

	e.writeConsole(level, line)

	for _, hook := range level.Webhooks {
		if err := hook.Deliver(e.sender, line); err != nil {
			e.diagnose(diagColor, fmt.Sprintf("Failed to send a webhook request as a %s and wanted to send '%s', error: %v", sev, line, err))
		}
	}

	for _, file := range level.Files {
		if err := file.Append(line); err != nil {
			e.diagnose(diagColor, fmt.Sprintf("Couldn't write to a file as a %s, wanted to write '%s', error: %v", sev, line, err))
		}
	}
}

func (e *Engine) suffix(policy severity.Backtrace, loc Location) string {
	switch policy {
	case severity.BacktraceSimple:
		return " (" + loc.String() + ")"
	case severity.BacktraceComplex:
		return "\n" + e.tracer.Capture()
	default:
		return ""
	}
}

func (e *Engine) writeConsole(level *config.Level, line string) {
	var w io.Writer
	switch level.Console {
	case severity.ConsoleStdout:
		w = e.stdout
	case severity.ConsoleStderr:
		w = e.stderr
	default:
		return
	}
	_, _ = io.WriteString(w, e.paint(w, level.Color, line)+"\n")
}

func (e *Engine) diagnose(c color.Color, text string) {
	_, _ = io.WriteString(e.stdout, e.paint(e.stdout, c, text)+"\n")
}

// fallback reports an event that could not be dispatched. The timestamp is
// always UTC since no configuration is available to choose a zone.
func (e *Engine) fallback(sev severity.Severity, msg string, now time.Time, err error) {
	text := FormatTimestamp(now, severity.UTC) + " " + msg
	_, _ = fmt.Fprintf(e.stdout, "FATAL!!!: Failed to get the config, wanted to make a %s with the text '%s', error: %v\n", sev, text, err)
}

func (e *Engine) paint(w io.Writer, c color.Color, text string) string {
	switch e.colorMode {
	case color.Always:
		return c.Paint(text)
	case color.Never:
		return text
	default:
		if term.IsTerminalWriter(w) {
			return c.Paint(text)
		}
		return text
	}
}
