package keenlog

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  Severity
	}{
		{zapcore.DebugLevel, Info},
		{zapcore.InfoLevel, Info},
		{zapcore.WarnLevel, Warn},
		{zapcore.ErrorLevel, Error},
		{zapcore.DPanicLevel, Fatal},
		{zapcore.PanicLevel, Fatal},
		{zapcore.FatalLevel, Fatal},
	}

	for _, tt := range tests {
		if got := SeverityOf(tt.level); got != tt.want {
			t.Errorf("SeverityOf(%s) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestZapCore(t *testing.T) {
	l, stdout, stderr := newTestLogger(t)

	logger := zap.New(NewZapCore(l, zapcore.InfoLevel)).Named("relay").With(zap.String("component", "api"))
	logger.Debug("filtered")
	logger.Info("started", zap.Int("port", 8080))
	logger.Warn("slow")

	if stdout.String() != ts+" relay: started component=api port=8080\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.String() != ts+" relay: slow component=api\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestZapCore_CallerLocation(t *testing.T) {
	l, _, stderr := newTestLogger(t)

	logger := zap.New(NewZapCore(l, zapcore.DebugLevel), zap.AddCaller())
	logger.Error("failed")

	if !strings.Contains(stderr.String(), " failed (keenlog/zapcore_test.go:") {
		t.Errorf("Expected call site suffix, got %q", stderr.String())
	}
	if !strings.HasSuffix(stderr.String(), ":0)\n") {
		t.Errorf("Expected column 0 for zap entries, got %q", stderr.String())
	}
}
