package stats

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"loadshedding-stats/command/bootstrap"
	"loadshedding-stats/command/menu"
	"loadshedding-stats/domain/loadshedding"
)

// Query is one non-interactive aggregate request.
type Query struct {
	Kind string // average | stages | ampm
	Area int
	Year int // stages only
}

// Validate checks that the query names a known aggregate and has what it needs.
func (q Query) Validate() error {
	switch q.Kind {
	case "average", "ampm":
	case "stages":
		if q.Year == 0 {
			return fmt.Errorf("stats: -year is required for -kind stages")
		}
	case "":
		return fmt.Errorf("stats: -kind is required (average, stages or ampm)")
	default:
		return fmt.Errorf("stats: unknown -kind %q (want average, stages or ampm)", q.Kind)
	}
	if q.Area == 0 {
		return fmt.Errorf("stats: -area is required")
	}
	return nil
}

// Execute runs q against records and hands the result to report.
func Execute(q Query, records []loadshedding.Record, years []int, report menu.Reporter) error {
	if err := q.Validate(); err != nil {
		return err
	}
	slog.Info("stats.start", "kind", q.Kind, "area", q.Area, "year", q.Year)
	switch q.Kind {
	case "average":
		rows, err := loadshedding.AverageDurationByYear(records, q.Area, years)
		if err != nil {
			return err
		}
		return report.Averages(q.Area, rows)
	case "stages":
		return report.Stages(q.Area, q.Year, loadshedding.StageFrequency(records, q.Area, q.Year))
	default:
		return report.AmPm(q.Area, loadshedding.AmPmFrequency(records, q.Area, years))
	}
}

// Run executes the stats subcommand.
//
// Usage:
//
//	loadshedding stats -kind average|stages|ampm -area N [-year Y] [-data path] [-display window|file|none]
func Run(args []string, newGUI bootstrap.GUIFactory) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	kind := fs.String("kind", "", "aggregate: average, stages or ampm")
	area := fs.String("area", "", "area number (1-18)")
	year := fs.String("year", "", "year (2020-2023), required for -kind stages")
	dataPath := fs.String("data", "", "records CSV (default: data_path from config, else ./loadsheddingData.csv)")
	mode := fs.String("display", "", "chart display: window, file or none")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := Query{Kind: *kind}
	if *area != "" {
		n, err := menu.ParseArea(*area)
		if err != nil {
			return err
		}
		q.Area = n
	}
	if *year != "" {
		n, err := menu.ParseYear(*year)
		if err != nil {
			return err
		}
		q.Year = n
	}
	if err := q.Validate(); err != nil {
		return err
	}

	env, err := bootstrap.Load(bootstrap.Overrides{DataPath: *dataPath, Display: *mode}, newGUI, os.Stdout)
	if err != nil {
		return err
	}
	records := env.Store.Records()
	return env.Run(func() error {
		if err := Execute(q, records, env.Config.Years, env.Report); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stderr, "stats.done kind=%s area=%d\n", q.Kind, q.Area)
		return nil
	})
}
