package config

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maksimkurb/keen-log/src/internal/color"
	kerrors "github.com/maksimkurb/keen-log/src/internal/errors"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

const validTOML = `time_zone = "utc"
color_mode = "never"
webhook_timeout_sec = 3

[info]
files = ["info.txt", "/var/log/all.txt"]

[error]
color = "#102030"
console = "stdout"
backtrace = "none"

[[error.webhook]]
method = "PUT"
url = "https://hooks.example.com/notify"
format = '{"text":"{{line}}"}'
escape_json = true

[error.webhook.headers]
Content-Type = "application/json"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "keen-log.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if !errors.Is(err, kerrors.ErrConfig) {
		t.Errorf("Expected config error for non-existent file, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, "[info\nfiles = [\"a\"]")

	_, err := LoadConfig(configFile)
	if !errors.Is(err, kerrors.ErrConfig) {
		t.Errorf("Expected config error for invalid TOML, got %v", err)
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	configFile := writeConfig(t, "[info]\nfile = [\"a\"]\n")

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, validTOML)

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Fatalf("Expected config to be valid: %v", err)
	}

	if config.TimeZone != "utc" {
		t.Errorf("Expected time_zone to be 'utc', got %s", config.TimeZone)
	}
	if config.Info == nil || len(config.Info.Files) != 2 {
		t.Fatalf("Expected two info files, got %+v", config.Info)
	}
	if config.Warn != nil {
		t.Error("Expected warn section to be absent")
	}
	if config.Error == nil || len(config.Error.Webhooks) != 1 {
		t.Fatalf("Expected one error webhook, got %+v", config.Error)
	}
	if got := config.Error.Webhooks[0].Headers["Content-Type"]; got != "application/json" {
		t.Errorf("Expected Content-Type header, got %q", got)
	}
	if config.GetConfigDir() != filepath.Dir(configFile) {
		t.Errorf("GetConfigDir() = %s, want %s", config.GetConfigDir(), filepath.Dir(configFile))
	}

	mode, err := config.GetColorMode()
	if err != nil || mode != color.Never {
		t.Errorf("GetColorMode() = %v, %v", mode, err)
	}
	if config.GetWebhookTimeout() != 3*time.Second {
		t.Errorf("GetWebhookTimeout() = %v, want 3s", config.GetWebhookTimeout())
	}
}

func TestConfig_Defaults(t *testing.T) {
	config, err := ParseConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if config.GetWebhookTimeout() != DefaultWebhookTimeout {
		t.Errorf("GetWebhookTimeout() = %v, want %v", config.GetWebhookTimeout(), DefaultWebhookTimeout)
	}
	if mode, _ := config.GetColorMode(); mode != color.Auto {
		t.Errorf("GetColorMode() = %v, want auto", mode)
	}

	store := NewStore(nil)
	if err := config.Build(store); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	cfg, _ := store.Read()
	if cfg.Levels[3].Backtrace != severity.BacktraceComplex {
		t.Error("Expected an empty file to publish the defaults")
	}
}

func TestConfig_Build(t *testing.T) {
	configFile := writeConfig(t, validTOML)
	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	store := NewStore(Default())
	if err := config.Build(store); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	cfg, _ := store.Read()
	if cfg.TimeZone != severity.UTC {
		t.Errorf("TimeZone = %s, want utc", cfg.TimeZone)
	}

	info := cfg.Levels[0]
	wantRelative := filepath.Join(filepath.Dir(configFile), "info.txt")
	if len(info.Files) != 2 || info.Files[0].Path != wantRelative || info.Files[1].Path != "/var/log/all.txt" {
		t.Errorf("Unexpected info files: %v", info.Files)
	}

	errLevel := cfg.Levels[2]
	if errLevel.Color != color.RGB(0x10, 0x20, 0x30) {
		t.Errorf("Color = %s, want #102030", errLevel.Color)
	}
	if errLevel.Console != severity.ConsoleStdout || errLevel.Backtrace != severity.BacktraceNone {
		t.Errorf("Unexpected error level: %+v", errLevel)
	}
	if len(errLevel.Webhooks) != 1 {
		t.Fatalf("Expected one webhook, got %d", len(errLevel.Webhooks))
	}
	hook := errLevel.Webhooks[0]
	if hook.Request.Method != "PUT" || !hook.EscapeJSON || hook.Request.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Unexpected webhook: %+v", hook)
	}

	if cfg.Levels[1].Color != color.PaleOrange {
		t.Error("Expected absent sections to keep defaults")
	}
}

func TestConfig_BuildInvalidLeavesStore(t *testing.T) {
	config, err := ParseConfig([]byte("[info]\ncolor = \"not-a-color\"\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	initial := Default()
	store := NewStore(initial)
	if err := config.Build(store); !errors.Is(err, kerrors.ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if got, _ := store.Read(); got != initial {
		t.Error("Expected store to be untouched")
	}
}

func TestConfig_SerializeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.TimeZone = severity.UTC
	cfg.Levels[1].Console = severity.ConsoleDisabled
	cfg.Levels[1].Files = []sink.File{{Path: "/tmp/warn.txt"}}

	file := FromConfiguration(cfg)
	buf, err := file.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig() error: %v", err)
	}
	if !strings.Contains(buf.String(), "time_zone") {
		t.Errorf("Expected time_zone in output, got:\n%s", buf.String())
	}

	parsed, err := ParseConfig(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	store := NewStore(nil)
	if err := parsed.Build(store); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got, _ := store.Read()
	if got.TimeZone != cfg.TimeZone {
		t.Errorf("TimeZone = %s, want %s", got.TimeZone, cfg.TimeZone)
	}
	for i := range cfg.Levels {
		want, have := cfg.Levels[i], got.Levels[i]
		if want.Color != have.Color || want.Console != have.Console || want.Backtrace != have.Backtrace {
			t.Errorf("Level %d mismatch: %+v vs %+v", i, have, want)
		}
		if len(want.Files) != len(have.Files) {
			t.Errorf("Level %d files mismatch: %v vs %v", i, have.Files, want.Files)
		}
	}
}

func TestFromConfiguration_MultiValuedHeader(t *testing.T) {
	cfg := Default()
	cfg.Levels[2].Webhooks = []sink.Webhook{{
		Request: sink.RequestTemplate{
			Method: http.MethodPost,
			URL:    "https://hooks.example.com/alerts",
			Header: http.Header{
				"Content-Type": {"application/json"},
				"X-Tag":        {"billing", "nightly"},
			},
		},
		Format: "{{line}}",
	}}

	file := FromConfiguration(cfg)
	hook := file.Error.Webhooks[0]
	if got := hook.Headers["X-Tag"]; got != "billing, nightly" {
		t.Errorf("X-Tag = %q, want %q", got, "billing, nightly")
	}
	if got := hook.Headers["Content-Type"]; got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	store := NewStore(nil)
	if err := file.Build(store); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	rebuilt, _ := store.Read()
	header := rebuilt.Levels[2].Webhooks[0].Request.Header
	if got := header.Get("X-Tag"); got != "billing, nightly" {
		t.Errorf("Rebuilt X-Tag = %q", got)
	}
}
