package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"loadshedding-stats/connectors/display"
	"loadshedding-stats/domain/loadshedding"
)

// ChartRenderer turns aggregates into PNG images.
type ChartRenderer interface {
	AverageBars(area int, rows []loadshedding.YearAverage) ([]byte, error)
	StagePie(area, year int, counts []loadshedding.StageCount) ([]byte, error)
	AmPmBars(area int, rows []loadshedding.YearAmPm) ([]byte, error)
}

// Renderer prints aggregate tables to Out and hands charts to Viewer.
type Renderer struct {
	Out    io.Writer
	Charts ChartRenderer
	Viewer display.Viewer
}

// New returns a renderer writing tables to out.
func New(out io.Writer, charts ChartRenderer, viewer display.Viewer) *Renderer {
	return &Renderer{Out: out, Charts: charts, Viewer: viewer}
}

// Averages shows the yearly average bar chart, then its data points.
func (r *Renderer) Averages(area int, rows []loadshedding.YearAverage) error {
	png, err := r.Charts.AverageBars(area, rows)
	if err != nil {
		return fmt.Errorf("render average chart: %w", err)
	}
	if err := r.show(fmt.Sprintf("Average Loadshedding Duration in Area %d", area), png); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "\n\tData Points for Area %d\n\n", area)
	tw := tabwriter.NewWriter(r.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tAverage Duration\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%.2f\t\n", row.Year, row.Average)
	}
	return tw.Flush()
}

// Stages prints each stage's share of the total, then shows the pie chart.
func (r *Renderer) Stages(area, year int, counts []loadshedding.StageCount) error {
	if len(counts) == 0 {
		return fmt.Errorf("stage percentages: %w", &loadshedding.EmptySubsetError{Area: area, Year: year})
	}
	fmt.Fprintf(r.Out, "\n\tData Points for Area %d in %d\n\n", area, year)
	for _, s := range loadshedding.StagePercentages(counts) {
		fmt.Fprintf(r.Out, "\t%s\t\t%s%%\n", s.Stage, FormatPercent(s.Percent))
	}
	png, err := r.Charts.StagePie(area, year, counts)
	if err != nil {
		return fmt.Errorf("render stage chart: %w", err)
	}
	return r.show(fmt.Sprintf("Area %d Loadshedding Stage Percentages in %d", area, year), png)
}

// AmPm prints the AM/PM table, then shows the grouped bar chart.
func (r *Renderer) AmPm(area int, rows []loadshedding.YearAmPm) error {
	fmt.Fprintf(r.Out, "\n\tData Points for Area %d\n\n", area)
	tw := tabwriter.NewWriter(r.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tAM Frequency\tPM Frequency\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t\n", row.Year, row.AM, row.PM)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	png, err := r.Charts.AmPmBars(area, rows)
	if err != nil {
		return fmt.Errorf("render am/pm chart: %w", err)
	}
	return r.show(fmt.Sprintf("Day vs. Night Loadshedding Frequency in Area %d", area), png)
}

func (r *Renderer) show(title string, png []byte) error {
	slog.Debug("chart.show", "title", title, "bytes", len(png))
	if err := r.Viewer.Show(title, png); err != nil {
		return fmt.Errorf("show chart: %w", err)
	}
	return nil
}

// FormatPercent prints v the way the percentages have always been shown:
// shortest round-trip digits, with a trailing ".0" for whole numbers.
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
