package monitor

import (
	"fmt"
	"io"

	"aping/internal/models"
)

// PrintSummary writes the end-of-session statistics. Loss is reported as 0%
// when nothing was sent; latencies are only shown when something was received.
func PrintSummary(w io.Writer, destination string, stats models.Stats) {
	fmt.Fprintf(w, "\nPing statistics for %s:\n", destination)
	fmt.Fprintf(w, "    Packets: Sent = %d, Received = %d, Lost = %d (%.2f%% loss),\n",
		stats.Sent, stats.Received, stats.Lost(), stats.LossPercent())

	if stats.Received > 0 {
		fmt.Fprintln(w, "Approximate round trip times in milli-seconds:")
		fmt.Fprintf(w, "    Minimum = %dms, Maximum = %dms, Average = %dms\n",
			stats.MinRTT, stats.MaxRTT, stats.AvgRTT())
	}
}
