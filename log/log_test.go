package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestDebugf(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	defer SetOutput(os.Stderr)
	defer SetDebug(false)

	SetDebug(false)
	Debugf("hidden %v", 1)

	if b.Len() != 0 {
		t.Errorf("Expected no DEBUG output with debugging disabled, got %q", b.String())
	}

	SetDebug(true)
	Debugf("visible %v", 2)

	if !strings.Contains(b.String(), "DEBUG visible 2") {
		t.Errorf("Expected DEBUG output with debugging enabled, got %q", b.String())
	}
}

func TestLevels(t *testing.T) {
	var b bytes.Buffer

	SetOutput(&b)
	defer SetOutput(os.Stderr)

	Infof("created %v definitions", 3)
	Warnf("skipped %v", "row")
	Errorf("failed")

	for _, expected := range []string{"INFO  created 3 definitions", "WARN  skipped row", "ERROR failed"} {
		if !strings.Contains(b.String(), expected) {
			t.Errorf("Expected %q in log output, got %q", expected, b.String())
		}
	}
}
