package logging_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"mediasort/internal/logging"
	"mediasort/internal/services"
)

func newFileLogger(t *testing.T, level, format string) (*slog.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	logger, err := logging.New(logging.Options{Level: level, Format: format, OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return logger, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

var consoleLine = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z INFO organizer: run started files=3 move=false$`)

func TestConsoleFormat(t *testing.T) {
	logger, path := newFileLogger(t, "info", "console")
	logger.Info("run started", logging.Args(
		logging.String(logging.FieldComponent, "organizer"),
		logging.Int("files", 3),
		logging.Bool("move", false),
	)...)

	line := strings.TrimRight(readLog(t, path), "\n")
	if !consoleLine.MatchString(line) {
		t.Fatalf("console line %q does not match expected shape", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	logger, path := newFileLogger(t, "info", "console")
	logger.Info("probe", logging.Args(logging.String("path", "/tmp/My Pictures/a.jpg"))...)

	if got := readLog(t, path); !strings.Contains(got, `path="/tmp/My Pictures/a.jpg"`) {
		t.Fatalf("expected quoting in %q", got)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, path := newFileLogger(t, "info", "json")
	logger.Info("run started", logging.Args(logging.Int("files", 3))...)

	var record map[string]any
	if err := json.Unmarshal([]byte(readLog(t, path)), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["msg"] != "run started" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("level = %v", record["level"])
	}
	if record["files"] != float64(3) {
		t.Fatalf("files = %v", record["files"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("record is missing ts")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, path := newFileLogger(t, "info", "console")
	logger.Debug("hidden")
	logger.Info("visible")

	content := readLog(t, path)
	if strings.Contains(content, "hidden") {
		t.Fatalf("debug line leaked through info level: %q", content)
	}
	if !strings.Contains(content, "visible") {
		t.Fatalf("info line missing: %q", content)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	logger, path := newFileLogger(t, "info", "console")

	ctx := services.WithRunID(context.Background(), "run-123")
	ctx = services.WithSourceFile(ctx, "/src/a.jpg")
	logging.WithContext(ctx, logger).Info("file processed")

	content := readLog(t, path)
	if !strings.Contains(content, "run_id=run-123") {
		t.Fatalf("missing run_id in %q", content)
	}
	if !strings.Contains(content, "source_file=/src/a.jpg") {
		t.Fatalf("missing source_file in %q", content)
	}
}

func TestErrorAttrSurvivesNil(t *testing.T) {
	logger, path := newFileLogger(t, "info", "console")
	logger.Info("done", logging.Args(logging.Error(nil))...)

	if got := readLog(t, path); !strings.Contains(got, `error=<nil>`) {
		t.Fatalf("expected nil error rendering in %q", got)
	}
}
