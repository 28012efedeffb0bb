package main

import (
	"bytes"
	"errors"
	"testing"

	"aping/internal/config"
	"aping/internal/models"
)

func TestOpenSessionStore(t *testing.T) {
	store, err := openSessionStore(config.Config{Destination: "203.0.113.1"})
	if err != nil {
		t.Fatalf("openSessionStore() error = %v", err)
	}
	if store != nil {
		t.Errorf("expected no session store without a report directory, got %T", store)
	}

	store, err = openSessionStore(config.Config{Destination: "203.0.113.1", ReportDir: t.TempDir()})
	if err != nil {
		t.Fatalf("openSessionStore() error = %v", err)
	}
	if store == nil {
		t.Fatal("expected a session store when a report directory is set")
	}
	defer store.Close()

	if err := store.SaveResult(models.PingResult{Target: "203.0.113.1", Success: true, HasRTT: true, RTT: 4}); err != nil {
		t.Errorf("SaveResult() error = %v", err)
	}
}

type fakeGenerator struct {
	dir   string
	err   error
	calls int
}

func (g *fakeGenerator) GenerateReport(outputDir, destination string, stats models.Stats) (string, error) {
	g.calls++
	return g.dir, g.err
}

func TestWriteReport(t *testing.T) {
	cfg := config.Config{Destination: "203.0.113.1", ReportDir: "/tmp/reports"}

	var out bytes.Buffer
	gen := &fakeGenerator{dir: "/tmp/reports/aping_203_0_113_1"}
	if err := writeReport(&out, gen, cfg, models.Stats{}); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}
	if got, want := out.String(), "Report written to /tmp/reports/aping_203_0_113_1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	out.Reset()
	gen = &fakeGenerator{err: errors.New("read-only file system")}
	if err := writeReport(&out, gen, cfg, models.Stats{}); err == nil {
		t.Error("expected the generator error to be returned")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", out.String())
	}
}
