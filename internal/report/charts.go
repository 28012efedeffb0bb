package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"aping/internal/models"
)

// errNotEnoughData is returned when a chart would have nothing to draw
var errNotEnoughData = errors.New("not enough data to chart")

func (g *Generator) generateLatencyChart(outputDir, destination string, results []models.PingResult) error {
	var timestamps []time.Time
	var values []float64
	maxRTT := 0.0

	for _, r := range results {
		if !r.HasRTT {
			continue
		}
		timestamps = append(timestamps, r.Timestamp)
		values = append(values, float64(r.RTT))
		if float64(r.RTT) > maxRTT {
			maxRTT = float64(r.RTT)
		}
	}

	if len(values) < 2 {
		return errNotEnoughData
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Ping Latency - %s", destination),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeMinuteValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Latency (ms)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			// A flat series would give go-chart a zero range
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: maxRTT*1.1 + 1,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: destination,
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
				},
				XValues: timestamps,
				YValues: values,
			},
		},
	}

	// Add moving average
	if len(values) > 10 {
		ts := graph.Series[0].(chart.TimeSeries)
		graph.Series = append(graph.Series, chart.SMASeries{
			Name: "Moving Avg",
			Style: chart.Style{
				StrokeColor:     chart.GetDefaultColor(1),
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
			InnerSeries: ts,
			Period:      10,
		})
	}

	file, err := os.Create(filepath.Join(outputDir, "latency.png"))
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

// generateOutcomeChart draws how each ping cycle ended
func (g *Generator) generateOutcomeChart(outputDir string, results []models.PingResult) error {
	var replies, unparsed, failed, spawnErrors int
	for _, r := range results {
		switch {
		case r.SpawnFailed:
			spawnErrors++
		case !r.Success:
			failed++
		case r.HasRTT:
			replies++
		default:
			unparsed++
		}
	}

	if len(results) == 0 {
		return errNotEnoughData
	}

	graph := chart.BarChart{
		Title: "Ping Outcomes",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    800,
		Height:   400,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(len(results)),
			},
		},
		Bars: []chart.Value{
			{Label: "Replies", Value: float64(replies)},
			{Label: "Unparsed", Value: float64(unparsed)},
			{Label: "Failed", Value: float64(failed)},
			{Label: "Spawn errors", Value: float64(spawnErrors)},
		},
	}

	file, err := os.Create(filepath.Join(outputDir, "outcomes.png"))
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
