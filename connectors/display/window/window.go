package window

import (
	"bytes"
	"fmt"
	"image/png"
	"sync"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Viewer shows charts in a desktop window. The fyne event loop must own
// the main goroutine, so callers start their own work in a goroutine, call Run
// on the main goroutine and call Quit when done.
type Viewer struct {
	app    fyne.App
	window fyne.Window
	width  float32
	height float32

	mu     sync.Mutex
	closed chan struct{}
}

// New creates the application and its (hidden) chart window.
func New(width, height int) *Viewer {
	a := app.NewWithID("loadshedding-stats")
	v := &Viewer{app: a, width: float32(width), height: float32(height)}
	v.window = a.NewWindow("Loadshedding")
	// Hide rather than close so the app survives between charts.
	v.window.SetCloseIntercept(func() {
		v.window.Hide()
		v.mu.Lock()
		if v.closed != nil {
			close(v.closed)
			v.closed = nil
		}
		v.mu.Unlock()
	})
	return v
}

// Show displays the chart and blocks until the user closes the window.
func (v *Viewer) Show(title string, b []byte) error {
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("decode chart: %w", err)
	}
	done := make(chan struct{})
	v.mu.Lock()
	v.closed = done
	v.mu.Unlock()

	fyne.Do(func() {
		c := canvas.NewImageFromImage(img)
		c.FillMode = canvas.ImageFillContain
		c.SetMinSize(fyne.NewSize(v.width, v.height))
		v.window.SetTitle(title)
		v.window.SetContent(c)
		v.window.Resize(fyne.NewSize(v.width, v.height))
		v.window.Show()
		v.window.RequestFocus()
	})
	<-done
	return nil
}

// Run blocks in the fyne event loop until Quit.
func (v *Viewer) Run() { v.app.Run() }

// Quit stops the event loop; safe to call from any goroutine.
func (v *Viewer) Quit() {
	fyne.Do(v.app.Quit)
}
