package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err=%v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q)=%v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Fatalf("ParseFormat(text)=(%v,%v)", f, err)
	}
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(JSON)=(%v,%v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) succeeded")
	}
}

func TestNew_JSONUsesRFC3339Time(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelDebug, FormatJSON)
	log.Debug("edit applied", "rule", "list-continue")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	ts, ok := rec["time"].(string)
	if !ok {
		t.Fatalf("time field missing: %v", rec)
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("time %q is not RFC3339: %v", ts, err)
	}
	if rec["rule"] != "list-continue" || rec["msg"] != "edit applied" {
		t.Fatalf("record=%v", rec)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, FormatText)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record passed a warn logger: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestInitLogger_SetsDefault(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	log := InitLogger(&buf, LevelInfo, FormatText)
	if GetLogger() != log {
		t.Fatalf("GetLogger does not return the initialised logger")
	}
	slog.Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Fatalf("slog default not redirected: %q", buf.String())
	}
}
