package keenlog

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/maksimkurb/keen-log/src/internal/dispatch"
	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// zapCore forwards zap entries to a Logger. Fields are appended to the
// message as sorted key=value pairs.
type zapCore struct {
	logger  *Logger
	enabler zapcore.LevelEnabler
	fields  []zapcore.Field
}

// NewZapCore returns a zapcore.Core writing through l. Debug entries map to
// Info; DPanic, Panic and Fatal entries map to Fatal.
func NewZapCore(l *Logger, enabler zapcore.LevelEnabler) zapcore.Core {
	return &zapCore{logger: l, enabler: enabler}
}

// SeverityOf maps a zap level onto a severity.
func SeverityOf(level zapcore.Level) severity.Severity {
	switch {
	case level <= zapcore.InfoLevel:
		return severity.Info
	case level == zapcore.WarnLevel:
		return severity.Warn
	case level == zapcore.ErrorLevel:
		return severity.Error
	default:
		return severity.Fatal
	}
}

func (c *zapCore) Enabled(level zapcore.Level) bool {
	return c.enabler.Enabled(level)
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *zapCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *zapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	msg := entry.Message
	if entry.LoggerName != "" {
		msg = entry.LoggerName + ": " + msg
	}
	if rendered := renderFields(c.fields, fields); rendered != "" {
		msg += " " + rendered
	}

	var loc dispatch.Location
	if entry.Caller.Defined {
		loc = dispatch.LocationOf(entry.Caller.File, entry.Caller.Line)
	}

	c.logger.engine.Dispatch(SeverityOf(entry.Level), msg, loc)
	return nil
}

func (c *zapCore) Sync() error {
	return nil
}

func renderFields(groups ...[]zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, fields := range groups {
		for _, f := range fields {
			f.AddTo(enc)
		}
	}
	if len(enc.Fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(enc.Fields))
	for key := range enc.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", key, enc.Fields[key])
	}
	return strings.Join(pairs, " ")
}
