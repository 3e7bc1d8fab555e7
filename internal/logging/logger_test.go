package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		l, err := NewLogger(LogLevelInfo, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.GetLevel() != LogLevelInfo {
			t.Errorf("level = %d, want %d", l.GetLevel(), LogLevelInfo)
		}
		if l.file != nil {
			t.Error("file should be nil when no path given")
		}
		if l.Zap() == nil {
			t.Error("Zap() returned nil")
		}
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		l, err := NewLogger(LogLevelDebug, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.file == nil {
			t.Error("file should not be nil")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := NewLogger(LogLevelInfo, "/nonexistent/dir/test.log")
		if err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

func readLog(t *testing.T, level LogLevel, emit func(l *Logger)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLogger(level, path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	emit(l)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestLoggerLevels(t *testing.T) {
	emit := func(l *Logger) {
		l.Error("error %d", 1)
		l.Info("info %d", 2)
		l.Verbose("verbose %d", 3)
		l.Debug("debug %d", 4)
	}
	tests := []struct {
		level   LogLevel
		present []string
		absent  []string
	}{
		{LogLevelSilent, nil, []string{"error 1", "info 2", "verbose 3", "debug 4"}},
		{LogLevelError, []string{"error 1"}, []string{"info 2", "verbose 3", "debug 4"}},
		{LogLevelInfo, []string{"error 1", "info 2"}, []string{"verbose 3", "debug 4"}},
		{LogLevelDebug, []string{"error 1", "info 2", "verbose 3", "debug 4"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			out := readLog(t, tt.level, emit)
			for _, s := range tt.present {
				if !strings.Contains(out, s) {
					t.Errorf("log missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("log should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestLoggerLevelTags(t *testing.T) {
	out := readLog(t, LogLevelDebug, func(l *Logger) {
		l.Error("boom")
		l.Debug("detail")
	})
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "DEBUG") {
		t.Errorf("missing level tags:\n%s", out)
	}
}

func TestSetLevel(t *testing.T) {
	out := readLog(t, LogLevelError, func(l *Logger) {
		l.Info("before")
		l.SetLevel(LogLevelInfo)
		l.Info("after")
	})
	if strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Errorf("SetLevel not applied:\n%s", out)
	}
}

func TestLogHex(t *testing.T) {
	out := readLog(t, LogLevelDebug, func(l *Logger) {
		l.LogHex("frame", []byte{0x90, 0x00, 0x01})
	})
	if !strings.Contains(out, "frame: 90 00 01") {
		t.Errorf("hex not formatted:\n%s", out)
	}
}

func TestZapRespectsLevel(t *testing.T) {
	out := readLog(t, LogLevelInfo, func(l *Logger) {
		l.Zap().Info("from library")
		l.Zap().Debug("library detail")
	})
	if !strings.Contains(out, "from library") {
		t.Errorf("zap info dropped:\n%s", out)
	}
	if strings.Contains(out, "library detail") {
		t.Errorf("zap debug leaked at info level:\n%s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"silent", LogLevelSilent, false},
		{"ERROR", LogLevelError, false},
		{"", LogLevelInfo, false},
		{" verbose ", LogLevelVerbose, false},
		{"debug", LogLevelDebug, false},
		{"loud", LogLevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
