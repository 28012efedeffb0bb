package ping

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"aping/internal/models"
)

// ExitError reports a ping process that ran but exited non-zero
type ExitError struct {
	Code   int
	Stderr []byte
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("ping exited with status %d", e.Code)
	if stderr := strings.TrimSpace(string(e.Stderr)); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Runner executes a command and returns its standard output. A process that
// starts but exits non-zero is reported as *ExitError.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

var _ models.Pinger = (*Pinger)(nil)

// Pinger implements models.Pinger by running the system ping binary
type Pinger struct {
	goos   string
	parser models.OutputParser
	run    Runner
}

// New creates a Pinger for the running platform
func New() *Pinger {
	return NewWithRunner(runtime.GOOS, ExecRunner)
}

// NewWithRunner creates a Pinger for goos that executes commands through run
func NewWithRunner(goos string, run Runner) *Pinger {
	return &Pinger{
		goos:   goos,
		parser: ParserFor(goos),
		run:    run,
	}
}

// Ping sends one echo request to target and returns the parsed result.
// Failures are reported in the result, never as a Go error.
func (p *Pinger) Ping(ctx context.Context, target string) models.PingResult {
	result := models.PingResult{
		Timestamp: time.Now(),
		Target:    target,
	}

	output, err := p.run(ctx, "ping", CommandArgs(p.goos, target)...)
	result.Output = string(output)

	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			result.SpawnFailed = true
		}
		result.ErrorMessage = err.Error()
		return result
	}

	result.Success = true
	line, rtt, hasRTT, ok := p.parser.Parse(result.Output)
	if ok {
		result.Line = line
		result.RTT = rtt
		result.HasRTT = hasRTT
	}

	return result
}

// ExecRunner runs the command with os/exec, capturing stdout
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.Bytes()}
		}
		return output, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return output, nil
}
