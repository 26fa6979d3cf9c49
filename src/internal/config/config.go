package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/keen-log/src/internal/color"
	kerrors "github.com/maksimkurb/keen-log/src/internal/errors"
	"github.com/maksimkurb/keen-log/src/internal/log"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
	"github.com/maksimkurb/keen-log/src/internal/utils"
)

// DefaultWebhookTimeout bounds one webhook request when the file leaves
// webhook_timeout_sec unset.
const DefaultWebhookTimeout = 10 * time.Second

// Config is the on-disk (TOML) and on-wire (JSON) form of a Configuration.
// Empty values keep the defaults of Default().
type Config struct {
	// TimeZone is "local" (default) or "utc".
	TimeZone string `toml:"time_zone,omitempty" json:"time_zone,omitempty" validate:"omitempty,oneof=local utc"`
	// ColorMode is "auto" (default), "always" or "never".
	ColorMode string `toml:"color_mode,omitempty" json:"color_mode,omitempty" validate:"omitempty,oneof=auto always never"`
	// WebhookTimeoutSec bounds one webhook request in seconds (default: 10).
	WebhookTimeoutSec int `toml:"webhook_timeout_sec,omitempty" json:"webhook_timeout_sec,omitempty" validate:"gte=0"`

	Info  *LevelConfig `toml:"info,omitempty" json:"info,omitempty" validate:"-"`
	Warn  *LevelConfig `toml:"warn,omitempty" json:"warn,omitempty" validate:"-"`
	Error *LevelConfig `toml:"error,omitempty" json:"error,omitempty" validate:"-"`
	Fatal *LevelConfig `toml:"fatal,omitempty" json:"fatal,omitempty" validate:"-"`

	_absConfigFilePath string
}

// LevelConfig configures one severity.
type LevelConfig struct {
	// Color is "#rrggbb", "rgb(r, g, b)" or a palette name.
	Color string `toml:"color,omitempty" json:"color,omitempty" validate:"omitempty,color"`
	// Console is "stdout", "stderr" or "disabled".
	Console string `toml:"console,omitempty" json:"console,omitempty" validate:"omitempty,oneof=disabled none off stdout stderr"`
	// Backtrace is "none", "simple" or "complex".
	Backtrace string `toml:"backtrace,omitempty" json:"backtrace,omitempty" validate:"omitempty,oneof=none simple complex"`
	// Files are appended to in order. Relative paths resolve against the config file directory.
	Files []string `toml:"files,omitempty" json:"files,omitempty" validate:"dive,required"`
	// Webhooks are called in order, one request each per event.
	Webhooks []*WebhookConfig `toml:"webhook,omitempty" json:"webhook,omitempty"`
}

// WebhookConfig configures one webhook sink.
type WebhookConfig struct {
	// Method defaults to POST.
	Method string `toml:"method,omitempty" json:"method,omitempty" validate:"omitempty,oneof=GET POST PUT PATCH DELETE"`
	URL    string `toml:"url" json:"url" validate:"required,url"`
	// Headers are sent with every request.
	Headers map[string]string `toml:"headers,omitempty" json:"headers,omitempty"`
	// Format is the request body; it must contain exactly one {{line}} placeholder.
	Format string `toml:"format" json:"format" validate:"required,line_placeholder"`
	// EscapeJSON escapes the line for use inside a JSON string before substitution.
	EscapeJSON bool `toml:"escape_json,omitempty" json:"escape_json,omitempty"`
}

// LoadConfig reads and decodes the TOML file at configPath. It does not
// validate the result; call ValidateConfig for that.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, kerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, kerrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), err)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, kerrors.NewConfigError("failed to read config file", err)
	}

	config, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// ParseConfig decodes a TOML document. Unknown keys are rejected.
func ParseConfig(content []byte) (*Config, error) {
	var config Config
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, kerrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Errorf("%s", serr.String())
		}
		return nil, kerrors.NewConfigError("failed to parse config file", err)
	}
	return &config, nil
}

// SerializeConfig encodes c as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// GetConfigDir returns the directory relative file paths resolve against.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// Levels returns the four severity sections in severity order. Missing
// sections are nil.
func (c *Config) Levels() [severity.Count]*LevelConfig {
	return [severity.Count]*LevelConfig{c.Info, c.Warn, c.Error, c.Fatal}
}

// GetColorMode returns the parsed color mode.
func (c *Config) GetColorMode() (color.Mode, error) {
	if c.ColorMode == "" {
		return color.Auto, nil
	}
	return color.ParseMode(c.ColorMode)
}

// GetWebhookTimeout returns the per-request webhook timeout.
func (c *Config) GetWebhookTimeout() time.Duration {
	if c.WebhookTimeoutSec <= 0 {
		return DefaultWebhookTimeout
	}
	return time.Duration(c.WebhookTimeoutSec) * time.Second
}

// Apply feeds c through b. It returns the first parse or builder error.
func (c *Config) Apply(b *Builder) error {
	if c.TimeZone != "" {
		var tz severity.TimeZone
		if err := tz.UnmarshalText([]byte(c.TimeZone)); err != nil {
			return err
		}
		b.TimeZone(tz)
	}

	for i, section := range c.Levels() {
		if section == nil {
			continue
		}
		if err := section.apply(b.Select(severity.All[i]), c.GetConfigDir()); err != nil {
			return err
		}
	}

	return b.Err()
}

func (l *LevelConfig) apply(b *Builder, baseDir string) error {
	if l.Color != "" {
		c, err := color.Parse(l.Color)
		if err != nil {
			return err
		}
		b.Color(c)
	}
	if l.Console != "" {
		var target severity.Console
		if err := target.UnmarshalText([]byte(l.Console)); err != nil {
			return err
		}
		b.Console(target)
	}
	if l.Backtrace != "" {
		var policy severity.Backtrace
		if err := policy.UnmarshalText([]byte(l.Backtrace)); err != nil {
			return err
		}
		b.Backtrace(policy)
	}
	for _, path := range l.Files {
		b.File(utils.GetAbsolutePath(path, baseDir))
	}
	for _, hook := range l.Webhooks {
		if hook == nil {
			continue
		}
		if hook.EscapeJSON {
			b.WebhookJSON(hook.requestTemplate(), hook.Format)
		} else {
			b.Webhook(hook.requestTemplate(), hook.Format)
		}
	}
	return b.Err()
}

func (w *WebhookConfig) requestTemplate() sink.RequestTemplate {
	req := sink.RequestTemplate{Method: w.Method, URL: w.URL}
	if len(w.Headers) > 0 {
		req.Header = make(http.Header, len(w.Headers))
		for key, value := range w.Headers {
			req.Header.Set(key, value)
		}
	}
	return req
}

// Build validates c, applies it to a fresh builder and publishes the result
// into store as one snapshot.
func (c *Config) Build(store *Store) error {
	if err := c.ValidateConfig(); err != nil {
		return kerrors.NewValidationError("invalid configuration", err)
	}
	b := NewBuilder(store)
	if err := c.Apply(b); err != nil {
		return err
	}
	return b.Publish()
}

// FromConfiguration returns the file form of cfg. Every section is filled in,
// so the result is explicit about defaults.
func FromConfiguration(cfg *Configuration) *Config {
	out := &Config{TimeZone: cfg.TimeZone.String()}
	sections := [severity.Count]*LevelConfig{}

	for i, level := range cfg.Levels {
		section := &LevelConfig{
			Color:     level.Color.String(),
			Console:   level.Console.String(),
			Backtrace: level.Backtrace.String(),
		}
		for _, f := range level.Files {
			section.Files = append(section.Files, f.Path)
		}
		for _, w := range level.Webhooks {
			section.Webhooks = append(section.Webhooks, webhookConfigFrom(w))
		}
		sections[i] = section
	}

	out.Info, out.Warn, out.Error, out.Fatal = sections[0], sections[1], sections[2], sections[3]
	return out
}

func webhookConfigFrom(w sink.Webhook) *WebhookConfig {
	hook := &WebhookConfig{
		Method:     w.Request.Method,
		URL:        w.Request.URL,
		Format:     w.Format,
		EscapeJSON: w.EscapeJSON,
	}
	if len(w.Request.Header) > 0 {
		hook.Headers = make(map[string]string, len(w.Request.Header))
		// Repeated header values fold into one comma-separated field value.
		for key, values := range w.Request.Header {
			hook.Headers[key] = strings.Join(values, ", ")
		}
	}
	return hook
}
