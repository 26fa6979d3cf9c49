package config

import (
	"errors"
	"net/http"
	"testing"

	"github.com/maksimkurb/keen-log/src/internal/color"
	kerrors "github.com/maksimkurb/keen-log/src/internal/errors"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

func TestBuilder_PublishFiles(t *testing.T) {
	store := NewStore(Default())

	err := NewBuilder(store).
		Select(severity.Info).
		File("info.txt").
		File("all.txt").
		Select(severity.Error).
		File("all.txt").
		Publish()
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	cfg, _ := store.Read()
	info := cfg.Levels[0].Files
	if len(info) != 2 || info[0].Path != "info.txt" || info[1].Path != "all.txt" {
		t.Errorf("Unexpected info files: %v", info)
	}
	if files := cfg.Levels[2].Files; len(files) != 1 || files[0].Path != "all.txt" {
		t.Errorf("Unexpected error files: %v", files)
	}
	if cfg.Levels[0].Color != color.Cyan {
		t.Error("Expected untouched settings to keep defaults")
	}
}

func TestBuilder_AllSetters(t *testing.T) {
	store := NewStore(Default())
	req := sink.RequestTemplate{URL: "http://example.invalid", Header: http.Header{"Content-Type": {"application/json"}}}

	err := NewBuilder(store).
		TimeZone(severity.UTC).
		Select(severity.Warn).
		Color(color.RGB(1, 2, 3)).
		Console(severity.ConsoleDisabled).
		Backtrace(severity.BacktraceComplex).
		Webhook(req, "{{line}}").
		WebhookJSON(req, `{"text":"{{line}}"}`).
		Publish()
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	cfg, _ := store.Read()
	warn := cfg.Levels[1]
	if cfg.TimeZone != severity.UTC {
		t.Errorf("TimeZone = %s, want utc", cfg.TimeZone)
	}
	if warn.Color != color.RGB(1, 2, 3) || warn.Console != severity.ConsoleDisabled || warn.Backtrace != severity.BacktraceComplex {
		t.Errorf("Unexpected warn level: %+v", warn)
	}
	if len(warn.Webhooks) != 2 || warn.Webhooks[0].EscapeJSON || !warn.Webhooks[1].EscapeJSON {
		t.Errorf("Unexpected webhooks: %+v", warn.Webhooks)
	}
}

func TestBuilder_Errors(t *testing.T) {
	req := sink.RequestTemplate{URL: "http://example.invalid"}

	tests := []struct {
		name     string
		build    func(b *Builder) *Builder
		sentinel error
	}{
		{"color without select", func(b *Builder) *Builder { return b.Color(color.Red) }, kerrors.ErrUnselectedSeverity},
		{"console without select", func(b *Builder) *Builder { return b.Console(severity.ConsoleStdout) }, kerrors.ErrUnselectedSeverity},
		{"backtrace without select", func(b *Builder) *Builder { return b.Backtrace(severity.BacktraceSimple) }, kerrors.ErrUnselectedSeverity},
		{"file without select", func(b *Builder) *Builder { return b.File("x.txt") }, kerrors.ErrUnselectedSeverity},
		{"webhook without select", func(b *Builder) *Builder { return b.Webhook(req, "{{line}}") }, kerrors.ErrUnselectedSeverity},
		{"select none", func(b *Builder) *Builder { return b.Select(severity.None) }, kerrors.ErrInvalidSeverity},
		{"select out of range", func(b *Builder) *Builder { return b.Select(severity.Severity(9)) }, kerrors.ErrInvalidSeverity},
		{"webhook without placeholder", func(b *Builder) *Builder { return b.Select(severity.Info).Webhook(req, "body") }, kerrors.ErrValidation},
		{"empty file path", func(b *Builder) *Builder { return b.Select(severity.Info).File("") }, kerrors.ErrValidation},
		{"unknown console", func(b *Builder) *Builder { return b.Select(severity.Info).Console(severity.Console(7)) }, kerrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := Default()
			store := NewStore(initial)

			b := tt.build(NewBuilder(store))
			if !errors.Is(b.Err(), tt.sentinel) {
				t.Errorf("Err() = %v, want %v", b.Err(), tt.sentinel)
			}
			if err := b.Publish(); !errors.Is(err, tt.sentinel) {
				t.Errorf("Publish() = %v, want %v", err, tt.sentinel)
			}

			got, _ := store.Read()
			if got != initial {
				t.Error("Expected failed Publish to leave the store untouched")
			}
		})
	}
}

func TestBuilder_FirstErrorIsSticky(t *testing.T) {
	store := NewStore(Default())

	b := NewBuilder(store).
		File("early.txt").
		Select(severity.Info).
		File("late.txt")

	if !errors.Is(b.Err(), kerrors.ErrUnselectedSeverity) {
		t.Fatalf("Expected unselected severity error, got %v", b.Err())
	}
	if err := b.Publish(); err == nil {
		t.Fatal("Expected Publish to fail")
	}

	cfg, _ := store.Read()
	if len(cfg.Levels[0].Files) != 0 {
		t.Error("Expected no partial application")
	}
}

func TestBuilder_PublishClearsSelection(t *testing.T) {
	store := NewStore(Default())
	b := NewBuilder(store).Select(severity.Info).File("a.txt")

	if err := b.Publish(); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if !errors.Is(b.File("b.txt").Err(), kerrors.ErrUnselectedSeverity) {
		t.Error("Expected selection to be cleared after Publish")
	}
}

func TestBuilder_PublishedSnapshotIsIndependent(t *testing.T) {
	store := NewStore(Default())
	b := NewBuilder(store).Select(severity.Info).File("a.txt")
	if err := b.Publish(); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	if err := b.Select(severity.Info).File("b.txt").Err(); err != nil {
		t.Fatalf("Unexpected builder error: %v", err)
	}

	cfg, _ := store.Read()
	if len(cfg.Levels[0].Files) != 1 {
		t.Errorf("Expected published snapshot to be unaffected by later builder calls, got %v", cfg.Levels[0].Files)
	}
}
