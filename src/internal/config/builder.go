package config

import (
	"fmt"

	"github.com/maksimkurb/keen-log/src/internal/color"
	"github.com/maksimkurb/keen-log/src/internal/errors"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

// Builder accumulates a Configuration and publishes it into a Store.
//
// Setters that act on one severity require a prior Select. The first error is
// sticky: every later call is a no-op, Err reports it and Publish returns it
// without touching the store.
type Builder struct {
	store    *Store
	cfg      *Configuration
	selected severity.Severity
	err      error
}

// NewBuilder returns a builder starting from Default().
func NewBuilder(store *Store) *Builder {
	return &Builder{
		store: store,
		cfg:   Default(),
	}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// TimeZone sets how timestamps are rendered for every severity.
func (b *Builder) TimeZone(tz severity.TimeZone) *Builder {
	if b.err != nil {
		return b
	}
	if tz != severity.Local && tz != severity.UTC {
		b.err = errors.NewValidationError(fmt.Sprintf("unknown time zone %s", tz), nil)
		return b
	}
	b.cfg.TimeZone = tz
	return b
}

// Select makes sev the target of the following per-severity setters.
func (b *Builder) Select(sev severity.Severity) *Builder {
	if b.err != nil {
		return b
	}
	if !sev.Valid() {
		b.err = errors.NewInvalidSeverityError(fmt.Sprintf("cannot select %s", sev))
		return b
	}
	b.selected = sev
	return b
}

// Color sets the console color of the selected severity.
func (b *Builder) Color(c color.Color) *Builder {
	if level := b.level("color"); level != nil {
		level.Color = c
	}
	return b
}

// Console sets the console stream of the selected severity.
func (b *Builder) Console(target severity.Console) *Builder {
	level := b.level("console")
	if level == nil {
		return b
	}
	switch target {
	case severity.ConsoleDisabled, severity.ConsoleStdout, severity.ConsoleStderr:
		level.Console = target
	default:
		b.err = errors.NewValidationError(fmt.Sprintf("unknown console target %s", target), nil)
	}
	return b
}

// Backtrace sets the backtrace policy of the selected severity.
func (b *Builder) Backtrace(policy severity.Backtrace) *Builder {
	level := b.level("backtrace")
	if level == nil {
		return b
	}
	switch policy {
	case severity.BacktraceNone, severity.BacktraceSimple, severity.BacktraceComplex:
		level.Backtrace = policy
	default:
		b.err = errors.NewValidationError(fmt.Sprintf("unknown backtrace policy %s", policy), nil)
	}
	return b
}

// File appends a file sink to the selected severity. Paths may repeat across
// severities.
func (b *Builder) File(path string) *Builder {
	level := b.level("file")
	if level == nil {
		return b
	}
	if path == "" {
		b.err = errors.NewValidationError("file path must not be empty", nil)
		return b
	}
	level.Files = append(level.Files, sink.File{Path: path})
	return b
}

// Webhook appends a webhook sink to the selected severity. format must
// contain exactly one {{line}} placeholder; the line is substituted as is.
func (b *Builder) Webhook(req sink.RequestTemplate, format string) *Builder {
	return b.webhook(req, format, false)
}

// WebhookJSON is like Webhook, but the line is escaped for use inside a JSON
// string literal before substitution.
func (b *Builder) WebhookJSON(req sink.RequestTemplate, format string) *Builder {
	return b.webhook(req, format, true)
}

func (b *Builder) webhook(req sink.RequestTemplate, format string, escapeJSON bool) *Builder {
	level := b.level("webhook")
	if level == nil {
		return b
	}
	hook, err := sink.NewWebhook(req, format, escapeJSON)
	if err != nil {
		b.err = err
		return b
	}
	level.Webhooks = append(level.Webhooks, hook)
	return b
}

// Publish copies the accumulated configuration into the store and clears the
// selection. The builder can keep being used for another Publish.
func (b *Builder) Publish() error {
	if b.err != nil {
		return b.err
	}
	snapshot := b.cfg.Clone()
	b.selected = severity.None
	return b.store.Replace(snapshot)
}

// level returns the selected severity's settings, or records an
// UNSELECTED_SEVERITY error and returns nil.
func (b *Builder) level(setting string) *Level {
	if b.err != nil {
		return nil
	}
	level, ok := b.cfg.Level(b.selected)
	if !ok {
		b.err = errors.NewUnselectedSeverityError(fmt.Sprintf("select a severity before setting the %s", setting))
		return nil
	}
	return level
}
