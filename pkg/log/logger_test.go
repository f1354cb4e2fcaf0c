package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Infof("hidden %d", 1)
	logger.Noticef("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Expected info message to be filtered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown 2") || !strings.Contains(buf.String(), "[test]") {
		t.Errorf("Expected notice message tagged with module, got %q", buf.String())
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("Expected debug message at debug level, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"Warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if level != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, level)
			}
		})
	}
}
