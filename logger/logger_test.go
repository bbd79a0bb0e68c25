package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lvl, _ := zerolog.ParseLevel(level)
	return FromZerolog(zerolog.New(&buf).Level(lvl)), &buf
}

func TestLogger_WithComponent(t *testing.T) {
	log, buf := newBufferLogger("debug")
	log.WithComponent("httpclient").Debug("request completed")

	out := buf.String()
	if !strings.Contains(out, `"component":"httpclient"`) {
		t.Errorf("expected component field, got %s", out)
	}
	if !strings.Contains(out, "request completed") {
		t.Errorf("expected message, got %s", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	log, buf := newBufferLogger("info")
	log.Info("done", Fields(FieldMethod, "GET", FieldStatus, 200))

	out := buf.String()
	if !strings.Contains(out, `"method":"GET"`) || !strings.Contains(out, `"status":200`) {
		t.Errorf("expected fields in output, got %s", out)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferLogger("info")
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at info level, got %s", buf.String())
	}
}

func TestFields_OddArguments(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("unexpected map: %v", m)
	}
}

func TestNew_TimestampToggle(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: "stderr"})
	log.logger = log.logger.Output(&buf)
	log.Info("hello")
	if !strings.Contains(buf.String(), `"time"`) {
		t.Errorf("expected timestamp field by default, got %s", buf.String())
	}

	buf.Reset()
	log = New(Config{Level: "info", Format: "json", Output: "stderr", NoTimestamp: true})
	log.logger = log.logger.Output(&buf)
	log.Info("hello")
	if strings.Contains(buf.String(), `"time"`) {
		t.Errorf("no_timestamp should suppress the time field, got %s", buf.String())
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := Config{Level: "loud", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}
