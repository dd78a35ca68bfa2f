package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf))
	log.Info("recomputed", zap.Int("harmonics", 6))
	_ = log.Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "recomputed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["harmonics"] != float64(6) {
		t.Errorf("harmonics = %v", entry["harmonics"])
	}
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithLevel("warn"))
	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn entry missing")
	}
}

func TestWithCore_Observer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithCore(core))

	log.Debug("tick", zap.Float64("fps", 60))
	log.Info("draw", zap.String("app", "impulse"))

	if logs.Len() != 2 {
		t.Fatalf("observed %d entries, want 2", logs.Len())
	}
	draw := logs.FilterMessage("draw").All()
	if len(draw) != 1 || draw[0].ContextMap()["app"] != "impulse" {
		t.Errorf("unexpected draw entries: %+v", draw)
	}
	if strings.Contains(buf.String(), "tick") {
		t.Error("debug entry should not reach the info-level encoder core")
	}
}

func TestWithDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithDevelopment())
	log.Info("console")
	_ = log.Sync()

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Error("development logger should not emit JSON")
	}
	if !strings.Contains(buf.String(), "console") {
		t.Error("message missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{" error ", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	f, err := OpenFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	log := New(WithOutput(f))
	log.Info("to file")
	_ = log.Sync()
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Error("log file missing entry")
	}
}
