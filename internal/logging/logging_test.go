package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"warn", false, false},
		{"", false, true},
		{"chatty", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.level, &buf)
			l.Debug().Msg("dbg")
			l.Info().Msg("inf")
			out := buf.String()
			if strings.Contains(out, "dbg") != tt.debugSeen {
				t.Errorf("debug visible = %v, want %v", !tt.debugSeen, tt.debugSeen)
			}
			if strings.Contains(out, "inf") != tt.infoSeen {
				t.Errorf("info visible = %v, want %v", !tt.infoSeen, tt.infoSeen)
			}
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	Component(New("info", &buf), "archive").Warn().Str("role", "music").Msg("omitted")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "archive" || entry["role"] != "music" || entry["level"] != "warn" {
		t.Errorf("unexpected entry: %v", entry)
	}
}
