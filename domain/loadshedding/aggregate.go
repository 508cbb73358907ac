package loadshedding

import (
	"math"
	"sort"

	lo "github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// noon is 12:00 in minutes since midnight; events starting at noon count as PM.
const noon = 12 * 60

// YearAverage is the mean interruption duration of an area in one year.
type YearAverage struct {
	Year    int
	Average float64 // minutes, rounded to two decimals
}

// StageCount is how many events of a stage an area had in one year.
type StageCount struct {
	Stage string
	Count int
}

// StageShare is a stage's share of all events, in percent.
type StageShare struct {
	Stage   string
	Percent float64
}

// YearAmPm splits an area's events in one year by start time.
type YearAmPm struct {
	Year int
	AM   int
	PM   int
}

// AverageDurationByYear computes the mean duration per year for area.
// A year without records yields an *EmptySubsetError.
func AverageDurationByYear(records []Record, area int, years []int) ([]YearAverage, error) {
	out := make([]YearAverage, 0, len(years))
	for _, year := range years {
		subset := FilterByAreaYear(records, area, year)
		if len(subset) == 0 {
			return nil, &EmptySubsetError{Area: area, Year: year}
		}
		total := lo.SumBy(subset, func(r Record) int { return r.Duration })
		avg := decimal.NewFromInt(int64(total)).
			Div(decimal.NewFromInt(int64(len(subset)))).
			Round(2)
		out = append(out, YearAverage{Year: year, Average: avg.InexactFloat64()})
	}
	return out, nil
}

// StageFrequency counts events per stage for area in year, sorted by stage label.
func StageFrequency(records []Record, area, year int) []StageCount {
	subset := FilterByAreaYear(records, area, year)
	counts := lo.CountValuesBy(subset, func(r Record) string { return r.Stage })
	stages := lo.Keys(counts)
	sort.Strings(stages)
	return lo.Map(stages, func(s string, _ int) StageCount {
		return StageCount{Stage: s, Count: counts[s]}
	})
}

// StagePercentages converts counts into percentages of the total.
// The share is rounded to three places before scaling, so 1/3 becomes
// 33.300000000000004 rather than 33.3.
func StagePercentages(counts []StageCount) []StageShare {
	total := lo.SumBy(counts, func(c StageCount) int { return c.Count })
	if total == 0 {
		return []StageShare{}
	}
	return lo.Map(counts, func(c StageCount, _ int) StageShare {
		share := math.Round(float64(c.Count)/float64(total)*1000) / 1000
		return StageShare{Stage: c.Stage, Percent: share * 100}
	})
}

// AmPmFrequency tallies AM and PM events per year for area.
func AmPmFrequency(records []Record, area int, years []int) []YearAmPm {
	return lo.Map(years, func(year int, _ int) YearAmPm {
		row := YearAmPm{Year: year}
		for _, r := range FilterByAreaYear(records, area, year) {
			if IsAM(r.Minute) {
				row.AM++
			} else {
				row.PM++
			}
		}
		return row
	})
}

// IsAM reports whether a start time (minutes since midnight) is before noon.
func IsAM(minute int) bool { return minute < noon }
