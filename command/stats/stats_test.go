package stats

import (
	"errors"
	"strings"
	"testing"
	"time"

	"loadshedding-stats/domain/loadshedding"
)

type fakeReporter struct{ got []string }

func (f *fakeReporter) Averages(area int, rows []loadshedding.YearAverage) error {
	f.got = append(f.got, "averages")
	return nil
}

func (f *fakeReporter) Stages(area, year int, counts []loadshedding.StageCount) error {
	f.got = append(f.got, "stages")
	return nil
}

func (f *fakeReporter) AmPm(area int, rows []loadshedding.YearAmPm) error {
	f.got = append(f.got, "ampm")
	return nil
}

func records() []loadshedding.Record {
	d, _ := time.Parse("2006-01-02", "2020-05-01")
	return []loadshedding.Record{{Date: d, Time: "09:00", Minute: 540, Area: 3, Stage: "Stage 2", Duration: 120}}
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		q    Query
		want string
	}{
		{Query{Kind: "average", Area: 1}, ""},
		{Query{Kind: "ampm", Area: 1}, ""},
		{Query{Kind: "stages", Area: 1, Year: 2020}, ""},
		{Query{Kind: "stages", Area: 1}, "-year is required"},
		{Query{Area: 1}, "-kind is required"},
		{Query{Kind: "median", Area: 1}, "unknown -kind"},
		{Query{Kind: "average"}, "-area is required"},
	}
	for _, tt := range tests {
		err := tt.q.Validate()
		if tt.want == "" {
			if err != nil {
				t.Errorf("%+v: unexpected error %v", tt.q, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%+v: error = %v, want %q", tt.q, err, tt.want)
		}
	}
}

func TestExecuteDispatches(t *testing.T) {
	rep := &fakeReporter{}
	years := []int{2020}
	for _, q := range []Query{
		{Kind: "average", Area: 3},
		{Kind: "stages", Area: 3, Year: 2020},
		{Kind: "ampm", Area: 3},
	} {
		if err := Execute(q, records(), years, rep); err != nil {
			t.Fatalf("%+v: %v", q, err)
		}
	}
	if strings.Join(rep.got, ",") != "averages,stages,ampm" {
		t.Errorf("calls = %v", rep.got)
	}
}

func TestExecuteEmptyAverage(t *testing.T) {
	err := Execute(Query{Kind: "average", Area: 9}, records(), []int{2020}, &fakeReporter{})
	if !errors.Is(err, loadshedding.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}
