package monitor

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/kit/log"

	"aping/internal/config"
	"aping/internal/latch"
	"aping/internal/models"
)

// scriptedPinger replays canned results and closes the latch after the last
type scriptedPinger struct {
	results []models.PingResult
	latch   *latch.Latch
	calls   int
}

func (p *scriptedPinger) Ping(_ context.Context, target string) models.PingResult {
	r := p.results[p.calls]
	r.Target = target
	p.calls++
	if p.calls == len(p.results) {
		p.latch.Set()
	}
	return r
}

type countingAlerter struct {
	count int
	err   error
}

func (a *countingAlerter) Alert() error {
	a.count++
	return a.err
}

type memoryStore struct {
	saved []models.PingResult
	err   error
}

func (s *memoryStore) SaveResult(r models.PingResult) error {
	s.saved = append(s.saved, r)
	return s.err
}
func (s *memoryStore) GetResults() ([]models.PingResult, error) { return s.saved, nil }
func (s *memoryStore) GetStats() ([]models.StoredStats, error) { return nil, nil }
func (s *memoryStore) GetOutages(int) ([]models.Outage, error) { return nil, nil }
func (s *memoryStore) Close() error { return nil }

func reply(rtt int) models.PingResult {
	return models.PingResult{
		Success: true,
		HasRTT:  true,
		RTT:     rtt,
		Line:    "64 bytes from 203.0.113.1: icmp_seq=1 ttl=57 time=" + strconv.Itoa(rtt) + " ms",
	}
}

func failure() models.PingResult {
	return models.PingResult{Output: "PING 203.0.113.1 (203.0.113.1) 56(84) bytes of data.\n", ErrorMessage: "ping exited with status 1"}
}

func newTestMonitor(inverse bool, results []models.PingResult) (*Monitor, *scriptedPinger, *countingAlerter, *memoryStore, *bytes.Buffer) {
	l := latch.New()
	pinger := &scriptedPinger{results: results, latch: l}
	alerter := &countingAlerter{}
	store := &memoryStore{}
	out := &bytes.Buffer{}

	cfg := config.Config{Destination: "203.0.113.1", Inverse: inverse}
	m := New(cfg, pinger, alerter, store, l, out, log.NewNopLogger())
	m.sleep = func(time.Duration) {}
	return m, pinger, alerter, store, out
}

func TestRunEndToEnd(t *testing.T) {
	tests := []struct {
		name    string
		inverse bool
		alerts  int
	}{
		{"normal mode alerts on replies", false, 2},
		{"inverse mode alerts on failures", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, pinger, alerter, store, out := newTestMonitor(tt.inverse,
				[]models.PingResult{reply(10), reply(20), failure()})

			stats := m.Run(context.Background())

			if pinger.calls != 3 {
				t.Errorf("pings = %d, want 3", pinger.calls)
			}
			want := models.Stats{Sent: 3, Received: 2, TotalRTT: 30, MinRTT: 10, MaxRTT: 20}
			if stats != want {
				t.Errorf("stats = %+v, want %+v", stats, want)
			}
			if stats.Lost() != 1 || stats.AvgRTT() != 15 {
				t.Errorf("lost/avg = %d/%d, want 1/15", stats.Lost(), stats.AvgRTT())
			}
			if alerter.count != tt.alerts {
				t.Errorf("alerts = %d, want %d", alerter.count, tt.alerts)
			}
			if len(store.saved) != 3 {
				t.Errorf("saved = %d results, want 3", len(store.saved))
			}
			if !strings.Contains(out.String(), "Ping failed to 203.0.113.1") {
				t.Errorf("missing failure notice in output:\n%s", out.String())
			}

			var summary bytes.Buffer
			PrintSummary(&summary, "203.0.113.1", stats)
			if !strings.Contains(summary.String(), "Sent = 3, Received = 2, Lost = 1 (33.33% loss)") {
				t.Errorf("unexpected summary:\n%s", summary.String())
			}
			if !strings.Contains(summary.String(), "Minimum = 10ms, Maximum = 20ms, Average = 15ms") {
				t.Errorf("unexpected summary:\n%s", summary.String())
			}
		})
	}
}

func TestRunStopsAfterLatch(t *testing.T) {
	// the pinger closes the latch while the second ping is in flight
	m, pinger, _, _, _ := newTestMonitor(false, []models.PingResult{reply(5), reply(6)})

	stats := m.Run(context.Background())

	if pinger.calls != 2 {
		t.Errorf("pings = %d, want 2", pinger.calls)
	}
	if stats.Sent != 2 {
		t.Errorf("sent = %d, want 2", stats.Sent)
	}
}

func TestRunSleepsFixedIntervalAfterEachPing(t *testing.T) {
	m, _, _, _, _ := newTestMonitor(false, []models.PingResult{reply(5), failure(), reply(6)})

	var sleeps []time.Duration
	m.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	m.Run(context.Background())

	if len(sleeps) != 3 {
		t.Fatalf("sleeps = %d, want 3", len(sleeps))
	}
	for i, d := range sleeps {
		if d != time.Second {
			t.Errorf("sleep %d = %v, want 1s", i, d)
		}
	}
}

func TestRunShutdownBeforeFirstPing(t *testing.T) {
	m, pinger, alerter, _, _ := newTestMonitor(false, nil)
	m.latch.Set()

	stats := m.Run(context.Background())

	if pinger.calls != 0 || alerter.count != 0 {
		t.Errorf("calls/alerts = %d/%d, want 0/0", pinger.calls, alerter.count)
	}
	if stats.Sent != 0 || stats.Received != 0 {
		t.Errorf("stats = %+v, want zero", stats)
	}

	var summary bytes.Buffer
	PrintSummary(&summary, "203.0.113.1", stats)
	got := summary.String()
	if !strings.Contains(got, "Sent = 0, Received = 0, Lost = 0 (0.00% loss)") {
		t.Errorf("unexpected summary:\n%s", got)
	}
	if strings.Contains(got, "NaN") || strings.Contains(got, "Minimum") {
		t.Errorf("summary should have no latency section:\n%s", got)
	}
}

func TestPerformPingOutput(t *testing.T) {
	tests := []struct {
		name    string
		result  models.PingResult
		inverse bool
		want    string
		alerts  int
	}{
		{
			name:   "reply line printed verbatim",
			result: models.PingResult{Success: true, HasRTT: true, RTT: 3, Line: "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=3.1 ms"},
			want:   "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=3.1 ms\n",
			alerts: 1,
		},
		{
			name:   "unexpected output",
			result: models.PingResult{Success: true, Output: "garbage\n"},
			want:   "Unexpected output: garbage\n",
			alerts: 1,
		},
		{
			name:    "spawn error in inverse mode",
			result:  models.PingResult{SpawnFailed: true, ErrorMessage: "failed to run ping: not found"},
			inverse: true,
			want:    "Error executing ping: failed to run ping: not found\n",
			alerts:  1,
		},
		{
			name:   "spawn error in normal mode",
			result: models.PingResult{SpawnFailed: true, ErrorMessage: "failed to run ping: not found"},
			want:   "Error executing ping: failed to run ping: not found\n",
			alerts: 0,
		},
		{
			name:   "process failure",
			result: failure(),
			want:   "Ping failed to 203.0.113.1\nOutput: PING 203.0.113.1 (203.0.113.1) 56(84) bytes of data.\n",
			alerts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, alerter, _, out := newTestMonitor(tt.inverse, []models.PingResult{tt.result})
			m.performPing(context.Background())

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
			if alerter.count != tt.alerts {
				t.Errorf("alerts = %d, want %d", alerter.count, tt.alerts)
			}
		})
	}
}

func TestRunWithoutStore(t *testing.T) {
	l := latch.New()
	pinger := &scriptedPinger{results: []models.PingResult{reply(3), failure()}, latch: l}
	m := New(config.Config{Destination: "203.0.113.1"}, pinger, &countingAlerter{}, nil, l, &bytes.Buffer{}, log.NewNopLogger())
	m.sleep = func(time.Duration) {}

	stats := m.Run(context.Background())

	if stats.Sent != 2 || stats.Received != 1 {
		t.Errorf("sent/received = %d/%d, want 2/1", stats.Sent, stats.Received)
	}
}

func TestPerformPingSurvivesStoreAndAlertErrors(t *testing.T) {
	m, _, alerter, store, _ := newTestMonitor(false, []models.PingResult{reply(4)})
	alerter.err = errors.New("closed")
	store.err = errors.New("disk full")

	m.performPing(context.Background())

	if got := m.Stats(); got.Received != 1 {
		t.Errorf("received = %d, want 1", got.Received)
	}
}
