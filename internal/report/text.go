package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/kit/log/level"

	"aping/internal/models"
)

func (g *Generator) generateTextReport(outputDir, destination string, stats models.Stats) error {
	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Audible Ping Session Report\n")
	fmt.Fprintf(file, "Generated: %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Destination: %s\n\n", destination)
	fmt.Fprintln(file, strings.Repeat("=", 60))

	fmt.Fprintln(file, "\nSTATISTICS")
	fmt.Fprintf(file, "  Sent: %d\n", stats.Sent)
	fmt.Fprintf(file, "  Received: %d\n", stats.Received)
	fmt.Fprintf(file, "  Lost: %d (%.2f%%)\n", stats.Lost(), stats.LossPercent())

	if stats.Received > 0 {
		fmt.Fprintf(file, "  Minimum RTT: %d ms\n", stats.MinRTT)
		fmt.Fprintf(file, "  Maximum RTT: %d ms\n", stats.MaxRTT)
		fmt.Fprintf(file, "  Average RTT: %d ms\n", stats.AvgRTT())
	}
	fmt.Fprintln(file)

	if err := g.writeStoreCheck(file, destination, stats); err != nil {
		return err
	}
	fmt.Fprintln(file, strings.Repeat("=", 60))

	outages, err := g.store.GetOutages(outageThreshold)
	if err != nil {
		return err
	}

	fmt.Fprintf(file, "\nOUTAGE PERIODS (%d+ consecutive failures)\n", outageThreshold)

	for i, o := range outages {
		fmt.Fprintf(file, "Outage #%d\n", i+1)
		fmt.Fprintf(file, "  Start: %s\n", o.StartTime.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(file, "  End: %s\n", o.EndTime.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(file, "  Duration: %s\n", o.Duration)
		fmt.Fprintf(file, "  Failed Checks: %d\n", o.FailedChecks)
		fmt.Fprintln(file)
	}

	if len(outages) == 0 {
		fmt.Fprintln(file, "No outages detected.")
	} else {
		fmt.Fprintf(file, "\nTotal Outages: %d\n", len(outages))
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	return nil
}

// writeStoreCheck lists the totals the session store recorded next to the
// live counters and warns when they disagree
func (g *Generator) writeStoreCheck(w io.Writer, destination string, stats models.Stats) error {
	stored, err := g.store.GetStats()
	if err != nil {
		return err
	}

	var total, successful int
	for _, s := range stored {
		if s.Target == destination {
			total, successful = s.TotalPings, s.Successful
		}
	}

	fmt.Fprintln(w, "SESSION STORE")
	fmt.Fprintf(w, "  Recorded: %d\n", total)
	fmt.Fprintf(w, "  With RTT: %d\n", successful)

	if total != stats.Sent || successful != stats.Received {
		fmt.Fprintln(w, "  WARNING: store totals differ from the live statistics")
		_ = level.Warn(g.logger).Log("msg", "Session store disagrees with live statistics",
			"stored_sent", total, "sent", stats.Sent,
			"stored_received", successful, "received", stats.Received)
	}
	fmt.Fprintln(w)
	return nil
}
