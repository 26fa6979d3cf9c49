package relay

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maksimkurb/keen-log/src/internal/log"
	"github.com/maksimkurb/keen-log/src/keenlog"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

type relayFixture struct {
	server *httptest.Server
	logger *keenlog.Logger
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newRelayFixture(t *testing.T, store *keenlog.Store) *relayFixture {
	t.Helper()
	log.DisableLogs()

	f := &relayFixture{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	f.logger = keenlog.NewLogger(store,
		keenlog.WithStdout(f.stdout),
		keenlog.WithStderr(f.stderr),
		keenlog.WithClock(fixedClock{}),
		keenlog.WithColorMode(keenlog.ColorNever),
	)
	f.server = httptest.NewServer(NewRouter(f.logger))
	t.Cleanup(f.server.Close)
	return f
}

func (f *relayFixture) do(t *testing.T, method, path, contentType, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func errorCode(body map[string]interface{}) string {
	errObj, _ := body["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func TestEmitLog(t *testing.T) {
	f := newRelayFixture(t, keenlog.NewStore(keenlog.DefaultConfig()))

	resp, body := f.do(t, http.MethodPost, "/api/v1/log/warn", "application/json", `{"message":"disk almost full"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", resp.StatusCode)
	}
	data, _ := body["data"].(map[string]interface{})
	if data["severity"] != "warn" {
		t.Errorf("Expected severity warn in response, got %v", body)
	}

	if !strings.Contains(f.stderr.String(), "] disk almost full\n") {
		t.Errorf("Expected event on stderr, got %q", f.stderr.String())
	}
}

func TestEmitLog_Errors(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantCode    string
	}{
		{"unknown severity", "/api/v1/log/debug", "application/json", `{"message":"x"}`, http.StatusNotFound, "not_found"},
		{"none severity", "/api/v1/log/none", "application/json", `{"message":"x"}`, http.StatusNotFound, "not_found"},
		{"malformed body", "/api/v1/log/info", "application/json", `{"message":`, http.StatusBadRequest, "invalid_request"},
		{"unknown field", "/api/v1/log/info", "application/json", `{"msg":"x"}`, http.StatusBadRequest, "invalid_request"},
		{"empty message", "/api/v1/log/info", "application/json", `{"message":""}`, http.StatusBadRequest, "validation_failed"},
		{"wrong content type", "/api/v1/log/info", "text/plain", `{"message":"x"}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRelayFixture(t, keenlog.NewStore(keenlog.DefaultConfig()))

			resp, body := f.do(t, http.MethodPost, tt.path, tt.contentType, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if code := errorCode(body); code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, code)
			}
			if f.stdout.Len() != 0 || f.stderr.Len() != 0 {
				t.Error("Expected no event to be dispatched")
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	f := newRelayFixture(t, keenlog.NewStore(keenlog.DefaultConfig()))

	resp, body := f.do(t, http.MethodGet, "/api/v1/config", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	data, _ := body["data"].(map[string]interface{})
	cfg, _ := data["config"].(map[string]interface{})
	info, _ := cfg["info"].(map[string]interface{})
	if info["console"] != "stdout" || info["color"] != "#00ffff" {
		t.Errorf("Unexpected info section: %v", info)
	}
	fatal, _ := cfg["fatal"].(map[string]interface{})
	if fatal["backtrace"] != "complex" {
		t.Errorf("Unexpected fatal section: %v", fatal)
	}
}

func TestReplaceConfig(t *testing.T) {
	f := newRelayFixture(t, keenlog.NewStore(keenlog.DefaultConfig()))
	file := filepath.Join(t.TempDir(), "info.txt")

	doc := map[string]interface{}{
		"time_zone": "utc",
		"info": map[string]interface{}{
			"console": "disabled",
			"files":   []string{file},
		},
	}
	payload, _ := json.Marshal(doc)

	resp, _ := f.do(t, http.MethodPut, "/api/v1/config", "application/json", string(payload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	resp, _ = f.do(t, http.MethodPost, "/api/v1/log/info", "application/json", `{"message":"to file"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", resp.StatusCode)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "[2024-01-01 00:00:00.000000000 UTC] to file\n" {
		t.Errorf("Unexpected file content: %q", content)
	}
	if f.stdout.Len() != 0 {
		t.Errorf("Expected console to be disabled, got %q", f.stdout.String())
	}
}

func TestReplaceConfig_ValidationFailure(t *testing.T) {
	store := keenlog.NewStore(keenlog.DefaultConfig())
	before, _ := store.Read()
	f := newRelayFixture(t, store)

	body := `{"error":{"color":"nope","webhook":[{"url":"https://example.com","format":"no placeholder"}]}}`
	resp, decoded := f.do(t, http.MethodPut, "/api/v1/config", "application/json", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
	if code := errorCode(decoded); code != "validation_failed" {
		t.Errorf("Expected validation_failed, got %s", code)
	}
	errObj, _ := decoded["error"].(map[string]interface{})
	details, _ := errObj["details"].(map[string]interface{})
	if fields, _ := details["errors"].([]interface{}); len(fields) != 2 {
		t.Errorf("Expected 2 field errors, got %v", details)
	}

	after, _ := store.Read()
	if after != before {
		t.Error("Expected store to be untouched")
	}
}

func TestReplaceConfig_RejectsStartupSettings(t *testing.T) {
	store := keenlog.NewStore(keenlog.DefaultConfig())
	before, _ := store.Read()
	f := newRelayFixture(t, store)

	body := `{"color_mode":"always","webhook_timeout_sec":1,"time_zone":"utc"}`
	resp, decoded := f.do(t, http.MethodPut, "/api/v1/config", "application/json", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
	if code := errorCode(decoded); code != "validation_failed" {
		t.Errorf("Expected validation_failed, got %s", code)
	}

	errObj, _ := decoded["error"].(map[string]interface{})
	details, _ := errObj["details"].(map[string]interface{})
	fields, _ := details["errors"].([]interface{})
	var paths []string
	for _, field := range fields {
		entry, _ := field.(map[string]interface{})
		path, _ := entry["field"].(string)
		paths = append(paths, path)
	}
	if strings.Join(paths, ",") != "color_mode,webhook_timeout_sec" {
		t.Errorf("Unexpected field errors: %v", paths)
	}

	if after, _ := store.Read(); after != before {
		t.Error("Expected store to be untouched")
	}

	resp, _ = f.do(t, http.MethodPost, "/api/v1/log/info", "application/json", `{"message":"hello"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", resp.StatusCode)
	}
	if strings.Contains(f.stdout.String(), "\033[") {
		t.Errorf("Expected unpainted output, got %q", f.stdout.String())
	}
}

func TestHealth(t *testing.T) {
	healthy := newRelayFixture(t, keenlog.NewStore(keenlog.DefaultConfig()))
	resp, err := http.Get(healthy.server.URL + "/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	empty := newRelayFixture(t, keenlog.NewStore(nil))
	resp, err = http.Get(empty.server.URL + "/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", resp.StatusCode)
	}
}

func TestGetConfig_Unavailable(t *testing.T) {
	f := newRelayFixture(t, keenlog.NewStore(nil))

	resp, body := f.do(t, http.MethodGet, "/api/v1/config", "", "")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", resp.StatusCode)
	}
	if code := errorCode(body); code != "config_unavailable" {
		t.Errorf("Expected config_unavailable, got %s", code)
	}
}
