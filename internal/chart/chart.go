// Package chart renders the derived time series as line charts. The output
// contract matches what page clients expect: base64-encoded PNGs over a
// shared date axis.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/khuynh22/financial-tracker/internal/models"
)

// Render produces the spending and accessible net worth charts for a derived
// series. An empty series still renders (empty axes), matching the page
// behavior before any snapshot exists.
func Render(series []models.SeriesPoint) (*models.ChartSet, error) {
	spending, err := renderLine("Spending Over Time", "Spending", series,
		func(p models.SeriesPoint) float64 { return p.Spending }, color.RGBA{B: 255, A: 255})
	if err != nil {
		return nil, err
	}
	netWorth, err := renderLine("Accessible Net Worth Over Time", "Accessible Net Worth", series,
		func(p models.SeriesPoint) float64 { return p.AccessibleNetWorth }, color.RGBA{G: 128, A: 255})
	if err != nil {
		return nil, err
	}
	return &models.ChartSet{Spending: spending, NetWorth: netWorth}, nil
}

func renderLine(title, yLabel string, series []models.SeriesPoint, pick func(models.SeriesPoint) float64, c color.Color) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: models.DateFormat}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(series))
	for _, point := range series {
		// Dates in a derived series are already validated.
		t, err := time.Parse(models.DateFormat, point.Date)
		if err != nil {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(t.Unix()), Y: pick(point)})
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", fmt.Errorf("failed to build line plot: %w", err)
	}
	line.Color = c
	points.Color = c
	p.Add(line, points)

	writer, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("failed to encode chart: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
