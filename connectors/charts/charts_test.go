package charts

import (
	"bytes"
	"image/png"
	"testing"

	"loadshedding-stats/domain/loadshedding"
)

func decodeSize(t *testing.T, b []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestAverageBarsRendersPNG(t *testing.T) {
	r := New(640, 480)
	b, err := r.AverageBars(1, []loadshedding.YearAverage{{Year: 2020, Average: 150}, {Year: 2021, Average: 135}, {Year: 2022, Average: 180}, {Year: 2023, Average: 200}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if w, h := decodeSize(t, b); w != 640 || h != 480 {
		t.Errorf("size = %dx%d, want 640x480", w, h)
	}
}

func TestStagePieRendersPNG(t *testing.T) {
	r := New(800, 600)
	counts := []loadshedding.StageCount{{Stage: "Stage 1", Count: 2}, {Stage: "Stage 2", Count: 5}, {Stage: "Stage 3", Count: 1}, {Stage: "Stage 4", Count: 4}, {Stage: "Stage 5", Count: 1}, {Stage: "Stage 6", Count: 3}, {Stage: "Stage 7", Count: 1}}
	b, err := r.StagePie(4, 2022, counts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if w, h := decodeSize(t, b); w != 800 || h != 600 {
		t.Errorf("size = %dx%d, want 800x600", w, h)
	}
}

func TestAmPmBarsRendersAllZero(t *testing.T) {
	r := New(800, 600)
	b, err := r.AmPmBars(18, []loadshedding.YearAmPm{{Year: 2020, AM: 0, PM: 0}, {Year: 2021, AM: 0, PM: 0}, {Year: 2022, AM: 0, PM: 0}, {Year: 2023, AM: 0, PM: 0}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	decodeSize(t, b)
}

func TestRenderRejectsEmptyInput(t *testing.T) {
	r := New(800, 600)
	if _, err := r.AverageBars(1, nil); err == nil {
		t.Error("expected error for no averages")
	}
	if _, err := r.StagePie(1, 2020, nil); err == nil {
		t.Error("expected error for no stages")
	}
	if _, err := r.StagePie(1, 2020, []loadshedding.StageCount{{Stage: "Stage 1", Count: 0}}); err == nil {
		t.Error("expected error for zero total")
	}
	if _, err := r.AmPmBars(1, nil); err == nil {
		t.Error("expected error for no years")
	}
}

func TestAxisHelpers(t *testing.T) {
	if got := axisMax(0); got != 1 {
		t.Errorf("axisMax(0) = %v, want 1", got)
	}
	if got := axisMax(100); got != 110 {
		t.Errorf("axisMax(100) = %v, want 110", got)
	}
	if got := barWidth(800, 4); got != 80 {
		t.Errorf("barWidth(800, 4) = %d, want 80", got)
	}
	if got := barWidth(200, 11); got != 8 {
		t.Errorf("barWidth(200, 11) = %d, want 8", got)
	}
}
