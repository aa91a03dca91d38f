package logx_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Danimarqz/moodleapp/pkg/logx"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logx.NewLogger(&logx.Config{
		Level:  logx.LevelInfo,
		Format: logx.FormatJSON,
		Output: &buf,
	})

	logger.WithField("course", 42).Info("sync finished")

	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if payload["level"] != "INFO" {
		t.Fatalf("expected INFO, got %v", payload["level"])
	}
	if payload["message"] != "sync finished" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if payload["course"] != float64(42) {
		t.Fatalf("field lost: %v", payload["course"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logx.NewLogger(&logx.Config{
		Level:  logx.LevelWarn,
		Format: logx.FormatJSON,
		Output: &buf,
	})

	logger.WithField("k", "v").Info("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("info logged below threshold: %q", buf.String())
	}

	logger.WithField("k", "v").Warn("should pass")
	if buf.Len() == 0 {
		t.Fatal("warn dropped at warn threshold")
	}
}

func TestConsoleFormatIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logx.NewLogger(&logx.Config{
		Level:      logx.LevelDebug,
		Format:     logx.FormatConsole,
		TimeFormat: "15:04:05",
		Output:     &buf,
	})

	logger.WithField("b", 2).WithField("a", 1).Debug("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Fatalf("message missing: %q", out)
	}
	// Fields are emitted in stable sorted order.
	if strings.Index(out, "a=1") > strings.Index(out, "b=2") {
		t.Fatalf("fields not sorted: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	if logx.ParseLevel("warning") != logx.LevelWarn {
		t.Fatal("warning should parse as warn")
	}
	if logx.ParseLevel("nonsense") != logx.LevelInfo {
		t.Fatal("unknown levels should default to info")
	}
}
