package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kit/kit/log/level"

	"aping/internal/alert"
	"aping/internal/models"
)

// performPing runs one cycle: ping, record, print, alert
func (m *Monitor) performPing(ctx context.Context) {
	result := m.pinger.Ping(ctx, m.config.Destination)
	m.stats.Record(result)

	m.printResult(result)

	if alert.ShouldAlert(result.Success, m.config.Inverse) {
		if err := m.alerter.Alert(); err != nil {
			_ = level.Warn(m.logger).Log("msg", "Failed to sound alert", "err", err)
		}
	}

	if m.store != nil {
		if err := m.store.SaveResult(result); err != nil {
			_ = level.Warn(m.logger).Log("msg", "Failed to save result", "err", err)
		}
	}
}

// printResult writes the user-facing line for one cycle
func (m *Monitor) printResult(result models.PingResult) {
	switch {
	case result.SpawnFailed:
		fmt.Fprintf(m.out, "Error executing ping: %s\n", result.ErrorMessage)
	case !result.Success:
		fmt.Fprintf(m.out, "Ping failed to %s\n", m.config.Destination)
		fmt.Fprintf(m.out, "Output: %s\n", strings.TrimRight(result.Output, "\r\n"))
		_ = level.Debug(m.logger).Log("msg", "Ping failed", "target", result.Target, "err", result.ErrorMessage)
	case result.Line == "":
		fmt.Fprintf(m.out, "Unexpected output: %s\n", strings.TrimRight(result.Output, "\r\n"))
	default:
		fmt.Fprintln(m.out, result.Line)
		if !result.HasRTT {
			_ = level.Debug(m.logger).Log("msg", "Reply line without latency", "line", result.Line)
		}
	}
}
