package applescript

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"remindmcp/internal/service"
)

const (
	// DefaultBin is the external interpreter binary.
	DefaultBin = "osascript"

	// DefaultTimeout is the wall-clock budget for one script execution.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxOutput caps captured stdout at 10 MiB so a pathological
	// reply cannot grow memory without bound.
	DefaultMaxOutput = 10 << 20
)

// PermissionRemediation is the user-actionable fix surfaced when macOS
// refuses Apple events to Reminders.
const PermissionRemediation = "grant access under System Settings > Privacy & Security > Reminders for the application hosting this server, then retry"

// Runner executes AppleScript in a fresh osascript subprocess per call.
// It is single-shot and stateless: no pooling, no reuse, no retries. Each
// call gets an independent timeout and output budget.
type Runner struct {
	// Bin is the interpreter binary; DefaultBin when empty.
	Bin string

	// Timeout is the per-call wall-clock budget; DefaultTimeout when zero.
	Timeout time.Duration

	// MaxOutput is the captured-output cap in bytes; DefaultMaxOutput
	// when zero.
	MaxOutput int64
}

// NewRunner creates a Runner with default settings.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the script and returns its trimmed standard output.
// Failures are classified: deadline -> service.ErrTimeout, cap breach ->
// service.ErrOutputTooLarge, authorization-denial marker in the diagnostic
// -> *service.PermissionError, anything else -> *service.ExecError with the
// interpreter's stderr verbatim.
func (r *Runner) Run(ctx context.Context, script string) (string, error) {
	bin := r.Bin
	if bin == "" {
		bin = DefaultBin
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxOut := r.MaxOutput
	if maxOut <= 0 {
		maxOut = DefaultMaxOutput
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, "-e", script)
	stdout := &cappedBuffer{limit: maxOut}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.overflowed {
		return "", service.ErrOutputTooLarge
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", service.ErrTimeout
		}
		return "", classify(stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// classify maps a failed invocation to the error taxonomy. osascript
// reports the macOS Apple-events authorization refusal as errAEEventNotPermitted
// (-1743); everything else passes through as a generic execution failure.
func classify(diagnostic string, err error) error {
	diag := strings.TrimSpace(diagnostic)
	if diag == "" {
		diag = err.Error()
	}
	lower := strings.ToLower(diag)
	if strings.Contains(diag, "-1743") ||
		strings.Contains(lower, "not authorized") ||
		strings.Contains(lower, "not authorised") {
		return &service.PermissionError{Remediation: PermissionRemediation}
	}
	return &service.ExecError{Diagnostic: diag}
}

// cappedBuffer stores writes up to limit bytes and only records that the
// limit was exceeded beyond it, keeping memory bounded while the subprocess
// drains.
type cappedBuffer struct {
	buf        bytes.Buffer
	limit      int64
	overflowed bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	remaining := b.limit - int64(b.buf.Len())
	if remaining <= 0 {
		b.overflowed = true
		return len(p), nil
	}
	if int64(len(p)) > remaining {
		b.overflowed = true
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
