package display

import (
	"os"
	"path/filepath"
	"testing"

	dconfig "loadshedding-stats/domain/config"
)

func TestFileViewerWritesNumberedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	v, err := NewFileViewer(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := v.Show("Average Loadshedding Duration in Area 1", []byte("png-1")); err != nil {
		t.Fatalf("show: %v", err)
	}
	if err := v.Show("", []byte("png-2")); err != nil {
		t.Fatalf("show: %v", err)
	}
	for name, want := range map[string]string{
		"001-average-loadshedding-duration-in-area-1.png": "png-1",
		"002-chart.png": "png-2",
	} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(b) != want {
			t.Errorf("%s = %q, want %q", name, b, want)
		}
	}
}

func TestNewByMode(t *testing.T) {
	if v, err := New(dconfig.Display{Mode: dconfig.DisplayNone}); err != nil {
		t.Fatalf("none: %v", err)
	} else if _, ok := v.(Nop); !ok {
		t.Errorf("none: got %T", v)
	}
	if v, err := New(dconfig.Display{Mode: dconfig.DisplayFile, Dir: t.TempDir()}); err != nil {
		t.Fatalf("file: %v", err)
	} else if _, ok := v.(*FileViewer); !ok {
		t.Errorf("file: got %T", v)
	}
	if _, err := New(dconfig.Display{Mode: dconfig.DisplayWindow}); err == nil {
		t.Error("window: expected error")
	}
	if _, err := New(dconfig.Display{Mode: "printer"}); err == nil {
		t.Error("unknown: expected error")
	}
}
