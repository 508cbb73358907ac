package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"loadshedding-stats/domain/loadshedding"
)

// Slice colours in the order r, g, b, c, m, y.
var sliceColors = []drawing.Color{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 191, B: 191, A: 255},
	{R: 191, G: 0, B: 191, A: 255},
	{R: 191, G: 191, B: 0, A: 255},
}

var (
	barColor = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	amColor  = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	pmColor  = drawing.Color{R: 255, G: 127, B: 14, A: 255}
)

// Renderer draws aggregates as PNG images.
type Renderer struct {
	Width  int
	Height int
}

// New returns a renderer for images of the given size.
func New(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// AverageBars draws one bar per year with the average duration in minutes.
func (r *Renderer) AverageBars(area int, rows []loadshedding.YearAverage) ([]byte, error) {
	if len(rows) == 0 {
		return nil, errors.New("average chart: no bars")
	}
	bars := make([]chart.Value, 0, len(rows))
	maxY := 0.0
	for _, row := range rows {
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(row.Year),
			Value: row.Average,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
		maxY = math.Max(maxY, row.Average)
	}
	bc := chart.BarChart{
		Title:      fmt.Sprintf("Average Loadshedding Duration in Area %d", area),
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth(r.Width, len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 28}},
		YAxis:      chart.YAxis{Name: "Minutes", Range: &chart.ContinuousRange{Min: 0, Max: axisMax(maxY)}},
		Bars:       bars,
	}
	return render(bc)
}

// StagePie draws one slice per stage, labelled with its share of the total.
func (r *Renderer) StagePie(area, year int, counts []loadshedding.StageCount) ([]byte, error) {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return nil, errors.New("stage chart: no events")
	}
	values := make([]chart.Value, 0, len(counts))
	for i, c := range counts {
		col := sliceColors[i%len(sliceColors)]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", c.Stage, float64(c.Count)/float64(total)*100),
			Value: float64(c.Count),
			Style: chart.Style{FillColor: col, StrokeColor: drawing.ColorWhite, StrokeWidth: 1},
		})
	}
	pc := chart.PieChart{
		Title:  fmt.Sprintf("Area %d Loadshedding Stage Percentages in %d", area, year),
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
	return render(pc)
}

// AmPmBars draws AM and PM bars side by side for every year.
func (r *Renderer) AmPmBars(area int, rows []loadshedding.YearAmPm) ([]byte, error) {
	if len(rows) == 0 {
		return nil, errors.New("am/pm chart: no bars")
	}
	var bars []chart.Value
	maxY := 0.0
	for i, row := range rows {
		if i > 0 {
			// empty slot between year groups
			bars = append(bars, chart.Value{Label: " ", Value: 0, Style: chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent}})
		}
		bars = append(bars,
			chart.Value{Label: fmt.Sprintf("%d AM", row.Year), Value: float64(row.AM), Style: chart.Style{FillColor: amColor, StrokeColor: amColor}},
			chart.Value{Label: fmt.Sprintf("%d PM", row.Year), Value: float64(row.PM), Style: chart.Style{FillColor: pmColor, StrokeColor: pmColor}},
		)
		maxY = math.Max(maxY, float64(max(row.AM, row.PM)))
	}
	bc := chart.BarChart{
		Title:      fmt.Sprintf("Day vs. Night Loadshedding Frequency in Area %d", area),
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth(r.Width, len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 28}},
		YAxis:      chart.YAxis{Name: "Events", Range: &chart.ContinuousRange{Min: 0, Max: axisMax(maxY)}},
		Bars:       bars,
	}
	return render(bc)
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func render(c renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// axisMax leaves headroom above the tallest bar and never returns an empty range.
func axisMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return math.Ceil(v * 11 / 10)
}

func barWidth(width, n int) int {
	if n == 0 {
		return 40
	}
	w := (width - 120) / (n * 2)
	if w < 8 {
		return 8
	}
	if w > 80 {
		return 80
	}
	return w
}
