package applescript

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"remindmcp/internal/service"
)

// fakeInterpreter writes an executable shell script standing in for
// osascript. It receives the same "-e <script>" argv the real binary would.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-osascript")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake interpreter: %v", err)
	}
	return path
}

func TestRunnerTrimsOutput(t *testing.T) {
	r := &Runner{Bin: fakeInterpreter(t, `printf '  hello world \n'`)}
	out, err := r.Run(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello world" {
		t.Errorf("out = %q", out)
	}
}

func TestRunnerTimeout(t *testing.T) {
	r := &Runner{
		Bin:     fakeInterpreter(t, "sleep 5"),
		Timeout: 100 * time.Millisecond,
	}
	_, err := r.Run(context.Background(), "ignored")
	if !errors.Is(err, service.ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestRunnerOutputTooLarge(t *testing.T) {
	r := &Runner{
		Bin:       fakeInterpreter(t, "head -c 4096 /dev/zero"),
		MaxOutput: 1024,
	}
	_, err := r.Run(context.Background(), "ignored")
	if !errors.Is(err, service.ErrOutputTooLarge) {
		t.Errorf("err = %v, want ErrOutputTooLarge", err)
	}
}

func TestRunnerPermissionDenied(t *testing.T) {
	r := &Runner{Bin: fakeInterpreter(t,
		`echo "execution error: Not authorized to send Apple events to Reminders. (-1743)" 1>&2; exit 1`)}
	_, err := r.Run(context.Background(), "ignored")
	var pe *service.PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PermissionError", err)
	}
	if pe.Remediation != PermissionRemediation {
		t.Errorf("Remediation = %q", pe.Remediation)
	}
}

func TestRunnerExecutionFailed(t *testing.T) {
	r := &Runner{Bin: fakeInterpreter(t,
		`echo 'execution error: Reminders got an error: Cannot get list "Nope". (-1728)' 1>&2; exit 1`)}
	_, err := r.Run(context.Background(), "ignored")
	var ee *service.ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want ExecError", err)
	}
	if !strings.Contains(ee.Diagnostic, "Nope") {
		t.Errorf("diagnostic not passed through verbatim: %q", ee.Diagnostic)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		diag       string
		permission bool
	}{
		{"execution error: Not authorized to send Apple events to Reminders. (-1743)", true},
		{"Not authorised to send Apple events", true},
		{"execution error: some AppleScript error (-2741)", false},
		{"", false},
	}
	for _, tt := range tests {
		err := classify(tt.diag, errors.New("exit status 1"))
		if got := service.IsPermissionDenied(err); got != tt.permission {
			t.Errorf("classify(%q) permission = %v, want %v", tt.diag, got, tt.permission)
		}
	}
}
