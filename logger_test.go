package colorspace

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

var allLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

func TestLoggerSilentByDefault(t *testing.T) {
	for _, level := range allLevels {
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("default logger enabled at %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name    string
		set     *slog.Logger
		enabled bool
	}{
		{"custom", custom, true},
		{"nil restores silence", nil, false},
		{"custom again", custom, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetLogger(tt.set)
			if Logger() == nil {
				t.Fatal("Logger() = nil")
			}
			if got := Logger().Enabled(context.Background(), slog.LevelDebug); got != tt.enabled {
				t.Errorf("Enabled(debug) = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestLoggerFieldsAreEmitted(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("converted", "from", SpaceSRGB, "to", SpaceLab)
	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=converted", "from=srgb", "to=lab"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.Default())
				SetLogger(nil)
				return
			}
			l := Logger()
			if l == nil {
				t.Error("Logger() = nil during concurrent SetLogger")
				return
			}
			l.Debug("concurrent read")
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledLogger(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
