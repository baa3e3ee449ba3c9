package monitoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var captured []string
	SetLogger(func(format string, v ...interface{}) {
		captured = append(captured, fmt.Sprintf(format, v...))
	})

	Logf("processed %d frames", 12)

	if len(captured) != 1 || !strings.Contains(captured[0], "12 frames") {
		t.Errorf("captured = %v, want one entry mentioning 12 frames", captured)
	}
}

func TestSetLoggerNil(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) { called = true })
	SetLogger(nil)

	Logf("should go nowhere")

	if called {
		t.Error("nil logger must silence output, previous logger was invoked")
	}
}

func TestLogfDefault(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf must not be nil by default")
	}
}
