package config

import (
	"github.com/maksimkurb/keen-log/src/internal/color"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

// Level is the per-severity part of a Configuration.
type Level struct {
	Color     color.Color        `json:"color"`
	Console   severity.Console   `json:"console"`
	Backtrace severity.Backtrace `json:"backtrace"`
	Files     []sink.File        `json:"files,omitempty"`
	Webhooks  []sink.Webhook     `json:"webhooks,omitempty"`
}

// Configuration is one complete, immutable-once-published dispatcher setup.
type Configuration struct {
	TimeZone severity.TimeZone     `json:"time_zone"`
	Levels   [severity.Count]Level `json:"levels"`
}

// Default returns the configuration every builder starts from: colored
// console output only, local time.
func Default() *Configuration {
	return &Configuration{
		TimeZone: severity.Local,
		Levels: [severity.Count]Level{
			{Color: color.Cyan, Console: severity.ConsoleStdout, Backtrace: severity.BacktraceNone},
			{Color: color.PaleOrange, Console: severity.ConsoleStderr, Backtrace: severity.BacktraceNone},
			{Color: color.Orange, Console: severity.ConsoleStderr, Backtrace: severity.BacktraceSimple},
			{Color: color.Red, Console: severity.ConsoleStderr, Backtrace: severity.BacktraceComplex},
		},
	}
}

// Level returns the settings of sev. The second value is false for None or
// an out-of-range severity.
func (c *Configuration) Level(sev severity.Severity) (*Level, bool) {
	i, ok := sev.Index()
	if !ok {
		return nil, false
	}
	return &c.Levels[i], true
}

// Clone returns a deep copy of c.
func (c *Configuration) Clone() *Configuration {
	if c == nil {
		return nil
	}
	out := *c
	for i := range out.Levels {
		out.Levels[i] = c.Levels[i].clone()
	}
	return &out
}

func (l Level) clone() Level {
	if l.Files != nil {
		l.Files = append([]sink.File(nil), l.Files...)
	}
	if l.Webhooks != nil {
		hooks := make([]sink.Webhook, len(l.Webhooks))
		for i, w := range l.Webhooks {
			hooks[i] = w.Clone()
		}
		l.Webhooks = hooks
	}
	return l
}
