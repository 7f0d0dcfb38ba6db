// Package charts rasterizes aggregated series into PNG images.
package charts

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var palette = []drawing.Color{
	drawing.ColorFromHex("4e79a7"),
	drawing.ColorFromHex("f28e2b"),
	drawing.ColorFromHex("e15759"),
	drawing.ColorFromHex("76b7b2"),
	drawing.ColorFromHex("59a14f"),
	drawing.ColorFromHex("edc949"),
	drawing.ColorFromHex("af7aa1"),
	drawing.ColorFromHex("ff9da7"),
}

// Renderer draws bar and line charts. Stateless; both methods are pure
// functions of their inputs.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderBarChart draws one bar per (label, value) pair. Callers must pass at
// least one pair.
func (r *Renderer) RenderBarChart(title string, labels []string, values []float64) ([]byte, error) {
	bars := make([]chart.Value, 0, len(values))
	for i, value := range values {
		color := palette[i%len(palette)]
		bars = append(bars, chart.Value{
			Label: labels[i],
			Value: value,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderLineChart draws a single series with one x tick per label. Callers
// must pass at least two points.
func (r *Renderer) RenderLineChart(title string, xLabels []string, values []float64) ([]byte, error) {
	xValues := make([]float64, len(values))
	ticks := make([]chart.Tick, len(values))
	for i := range values {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: xLabels[i]}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xValues,
				YValues: values,
				Style: chart.Style{
					StrokeColor: palette[0],
					DotColor:    palette[0],
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
