package keenlog

import (
	"github.com/maksimkurb/keen-log/src/internal/color"
	"github.com/maksimkurb/keen-log/src/internal/config"
	"github.com/maksimkurb/keen-log/src/internal/dispatch"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

type (
	Severity        = severity.Severity
	Backtrace       = severity.Backtrace
	Console         = severity.Console
	TimeZone        = severity.TimeZone
	Color           = color.Color
	ColorMode       = color.Mode
	RequestTemplate = sink.RequestTemplate
	Sender          = sink.Sender
	Builder         = config.Builder
	Store           = config.Store
	Configuration   = config.Configuration
	Option          = dispatch.Option
	Clock           = dispatch.Clock
	Tracer          = dispatch.Tracer
)

const (
	Info  = severity.Info
	Warn  = severity.Warn
	Error = severity.Error
	Fatal = severity.Fatal

	BacktraceNone    = severity.BacktraceNone
	BacktraceSimple  = severity.BacktraceSimple
	BacktraceComplex = severity.BacktraceComplex

	ConsoleDisabled = severity.ConsoleDisabled
	ConsoleStdout   = severity.ConsoleStdout
	ConsoleStderr   = severity.ConsoleStderr

	Local = severity.Local
	UTC   = severity.UTC

	ColorAuto   = color.Auto
	ColorAlways = color.Always
	ColorNever  = color.Never
)

var (
	RGB        = color.RGB
	ParseColor = color.Parse

	NewStore      = config.NewStore
	DefaultConfig = config.Default

	WithStdout    = dispatch.WithStdout
	WithStderr    = dispatch.WithStderr
	WithClock     = dispatch.WithClock
	WithTracer    = dispatch.WithTracer
	WithSender    = dispatch.WithSender
	WithColorMode = dispatch.WithColorMode
)
