package cmdutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("pgmap")

func TestSetupLoggingLevels(t *testing.T) {
	var buf bytes.Buffer
	c, err := SetupLogging(&buf, "warning", false, "")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	log.Info("hidden")
	log.Warning("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "WARN pgmap: shown") {
		t.Fatalf("log output %q", out)
	}
}

func TestSetupLoggingQuiet(t *testing.T) {
	var buf bytes.Buffer
	c, err := SetupLogging(&buf, "debug", true, "")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	log.Warning("suppressed")
	log.Error("kept")
	if out := buf.String(); strings.Contains(out, "suppressed") || !strings.Contains(out, "kept") {
		t.Fatalf("log output %q", out)
	}
}

func TestSetupLoggingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "run.log")
	c, err := SetupLogging(&bytes.Buffer{}, "notice", false, p)
	if err != nil {
		t.Fatal(err)
	}
	log.Notice("to file")
	c.Close()
	b, err := os.ReadFile(p)
	if err != nil || !strings.Contains(string(b), "to file") {
		t.Fatalf("file contents %q, %v", b, err)
	}
}

func TestSetupLoggingBadLevel(t *testing.T) {
	if _, err := SetupLogging(&bytes.Buffer{}, "loud", false, ""); err == nil {
		t.Fatal("expected error")
	}
}
