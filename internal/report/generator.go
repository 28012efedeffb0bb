package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"aping/internal/models"
)

// outageThreshold is how many consecutive failures make an outage
const outageThreshold = 3

// unsafeChars covers what may appear in a hostname, IPv4 or scoped IPv6 address
var unsafeChars = strings.NewReplacer(".", "_", ":", "_", "%", "_", "/", "_", "\\", "_", " ", "_")

// reportDirName names a report directory after the destination and the time
// it was written
func reportDirName(destination string, at time.Time) string {
	return fmt.Sprintf("aping_%s_%s", unsafeChars.Replace(destination), at.Format("2006-01-02_15-04-05"))
}

var _ models.ReportGenerator = (*Generator)(nil)

// Generator writes a session report from the session store
type Generator struct {
	store  models.Store
	logger log.Logger
	now    func() time.Time
}

// NewGenerator creates a new report generator
func NewGenerator(store models.Store, logger log.Logger) *Generator {
	return &Generator{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// GenerateReport writes charts and a text summary into a new directory under
// outputDir and returns its path. Individual artifacts that fail are logged
// and skipped.
func (g *Generator) GenerateReport(outputDir, destination string, stats models.Stats) (string, error) {
	reportDir := filepath.Join(outputDir, reportDirName(destination, g.now()))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	results, err := g.store.GetResults()
	if err != nil {
		return "", fmt.Errorf("failed to load session results: %w", err)
	}

	if err := g.generateLatencyChart(reportDir, destination, results); err != nil {
		g.logChartError("latency", err)
	}

	if err := g.generateOutcomeChart(reportDir, results); err != nil {
		g.logChartError("outcome", err)
	}

	if err := g.generateTextReport(reportDir, destination, stats); err != nil {
		_ = level.Warn(g.logger).Log("msg", "Failed to generate text report", "err", err)
	}

	_ = level.Info(g.logger).Log("msg", "Report generated", "dir", reportDir)
	return reportDir, nil
}

func (g *Generator) logChartError(chartName string, err error) {
	if errors.Is(err, errNotEnoughData) {
		_ = level.Debug(g.logger).Log("msg", "Skipping chart", "chart", chartName, "reason", err)
		return
	}
	_ = level.Warn(g.logger).Log("msg", "Failed to generate chart", "chart", chartName, "err", err)
}
