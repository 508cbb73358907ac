package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"loadshedding-stats/domain/loadshedding"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Expected headers: [index],Date,Time,Area,Stage,Duration
var required = []string{"date", "time", "area", "stage", "duration"}

// ParseError reports a header or row that could not be read.
type ParseError struct {
	Line   int // 1-based, header is line 1
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: missing column %s", e.Line, e.Column)
	}
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadRecords reads the interruption records file at path into a store.
func LoadRecords(path string) (*loadshedding.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records %s: %w", path, err)
	}
	defer f.Close()
	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read records %s: %w", path, err)
	}
	slog.Debug("data.load.rows", "path", path, "count", len(records))
	return loadshedding.NewStore(records), nil
}

// ReadRecords parses a records CSV from r. It stops at the first malformed row.
func ReadRecords(r io.Reader) ([]loadshedding.Record, error) {
	cr := csv.NewReader(r)
	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Line: 1, Err: errors.New("empty file")}
		}
		return nil, &ParseError{Line: 1, Err: err}
	}
	idx := indexMap(head)
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, &ParseError{Line: 1, Column: col}
		}
	}

	var out []loadshedding.Record
	line := 1
	for {
		rec, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		row, perr := parseRow(rec, idx)
		if perr != nil {
			perr.Line = line
			return nil, perr
		}
		out = append(out, row)
	}
	return out, nil
}

func parseRow(rec []string, idx map[string]int) (loadshedding.Record, *ParseError) {
	field := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }

	date, err := time.Parse(dateLayout, field("date"))
	if err != nil {
		return loadshedding.Record{}, &ParseError{Column: "Date", Value: field("date"), Err: err}
	}
	clock, err := time.Parse(timeLayout, field("time"))
	if err != nil {
		return loadshedding.Record{}, &ParseError{Column: "Time", Value: field("time"), Err: err}
	}
	area, err := ParseAreaLabel(field("area"))
	if err != nil {
		return loadshedding.Record{}, &ParseError{Column: "Area", Value: field("area"), Err: err}
	}
	duration, err := strconv.Atoi(field("duration"))
	if err != nil {
		return loadshedding.Record{}, &ParseError{Column: "Duration", Value: field("duration"), Err: err}
	}
	return loadshedding.Record{
		Date:     date,
		Time:     field("time"),
		Minute:   clock.Hour()*60 + clock.Minute(),
		Area:     area,
		Stage:    field("stage"),
		Duration: duration,
	}, nil
}

// ParseAreaLabel turns "Area 7" (or a bare "7") into 7.
func ParseAreaLabel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if rest, ok := cutPrefixFold(s, "area"); ok {
		s = strings.TrimSpace(rest)
	}
	return strconv.Atoi(s)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		h = strings.TrimPrefix(h, "\ufeff")
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}
