package loadshedding

import (
	"errors"
	"fmt"
	"sort"
	"time"

	lo "github.com/samber/lo"
)

// DefaultYears are the years covered by the historical dataset.
var DefaultYears = []int{2020, 2021, 2022, 2023}

// Record is one observed interruption event.
type Record struct {
	Date     time.Time // calendar date, midnight UTC
	Time     string    // start time as HH:MM (24-hour)
	Minute   int       // start time in minutes since midnight
	Area     int       // 1-18
	Stage    string    // e.g. "Stage 2"
	Duration int       // minutes
}

// Year returns the calendar year of the event.
func (r Record) Year() int { return r.Date.Year() }

// ErrNoRecords is returned when a query selects nothing to aggregate.
var ErrNoRecords = errors.New("no matching records")

// EmptySubsetError reports an area/year pair with no records.
type EmptySubsetError struct {
	Area int
	Year int
}

func (e *EmptySubsetError) Error() string {
	return fmt.Sprintf("no records for Area %d in %d", e.Area, e.Year)
}

func (e *EmptySubsetError) Unwrap() error { return ErrNoRecords }

// Store holds the loaded records in file order. It is read-only after construction.
type Store struct {
	records []Record
}

// NewStore wraps records. The slice is copied so later changes by the caller are not visible.
func NewStore(records []Record) *Store {
	return &Store{records: append([]Record(nil), records...)}
}

func (s *Store) Len() int { return len(s.records) }

// Records returns a copy of all records.
func (s *Store) Records() []Record {
	return append([]Record(nil), s.records...)
}

// FilterByAreaYear returns the records for area whose date falls in year.
func (s *Store) FilterByAreaYear(area, year int) []Record {
	return FilterByAreaYear(s.records, area, year)
}

// Areas lists the distinct areas present, ascending.
func (s *Store) Areas() []int {
	areas := lo.Uniq(lo.Map(s.records, func(r Record, _ int) int { return r.Area }))
	sort.Ints(areas)
	return areas
}

// Years lists the distinct years present, ascending.
func (s *Store) Years() []int {
	years := lo.Uniq(lo.Map(s.records, func(r Record, _ int) int { return r.Year() }))
	sort.Ints(years)
	return years
}

// FilterByAreaYear keeps records matching area and year, preserving order.
func FilterByAreaYear(records []Record, area, year int) []Record {
	return lo.Filter(records, func(r Record, _ int) bool {
		return r.Area == area && r.Year() == year
	})
}
