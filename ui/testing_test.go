package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Splitter/pkg/debounce"
)

// manualScheduler queues tasks until Fire is called.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	fn        func()
	cancelled bool
	done      bool
}

func (m *manualScheduler) Schedule(_ time.Duration, fn func()) debounce.CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	task := &manualTask{fn: fn}
	m.tasks = append(m.tasks, task)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		task.cancelled = true
	}
}

// Fire runs every live task and returns how many ran.
func (m *manualScheduler) Fire() int {
	m.mu.Lock()
	var live []*manualTask
	for _, task := range m.tasks {
		if !task.cancelled && !task.done {
			task.done = true
			live = append(live, task)
		}
	}
	m.mu.Unlock()
	for _, task := range live {
		task.fn()
	}
	return len(live)
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestApp(t *testing.T) (*SplitterApp, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	sa := NewSplitterApp(test.NewTempApp(t), sched)
	t.Cleanup(sa.session.Close)
	return sa, sched
}
