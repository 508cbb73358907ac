package display

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	dconfig "loadshedding-stats/domain/config"
)

// Viewer shows a rendered chart to the user. Show returns once the chart has
// been presented (for a window, once the user closes it).
type Viewer interface {
	Show(title string, png []byte) error
}

// Nop discards charts.
type Nop struct{}

func (Nop) Show(string, []byte) error { return nil }

// FileViewer writes each chart to Dir as a PNG and logs where it went.
type FileViewer struct {
	Dir string

	mu sync.Mutex
	n  int
}

// NewFileViewer creates dir (or a scratch directory when dir is empty).
func NewFileViewer(dir string) (*FileViewer, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "loadshedding-charts")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileViewer{Dir: dir}, nil
}

func (v *FileViewer) Show(title string, png []byte) error {
	v.mu.Lock()
	v.n++
	n := v.n
	v.mu.Unlock()
	path := filepath.Join(v.Dir, fmt.Sprintf("%03d-%s.png", n, slug(title)))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return err
	}
	slog.Info("chart.written", "path", path)
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	s = strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if s == "" {
		return "chart"
	}
	return s
}

// New builds the viewer for a non-window display mode.
func New(c dconfig.Display) (Viewer, error) {
	switch c.Mode {
	case dconfig.DisplayNone:
		return Nop{}, nil
	case dconfig.DisplayFile:
		return NewFileViewer(c.Dir)
	case dconfig.DisplayWindow:
		return nil, fmt.Errorf("display mode %q is served by package window", c.Mode)
	default:
		return nil, fmt.Errorf("unknown display mode %q", c.Mode)
	}
}
