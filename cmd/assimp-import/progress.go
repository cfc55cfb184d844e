package main

import (
	"fmt"
	"io"
	"math"

	"charm.land/lipgloss/v2"
)

const progressWidth = 30

var progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

// progressFeed hands progress values from the importer to the renderer.
type progressFeed struct {
	updates chan float32
}

func newProgressFeed(size int) *progressFeed {
	return &progressFeed{updates: make(chan float32, size)}
}

// report is the import's ProgressFunc. It runs inside the library and never
// blocks; values the renderer has no room for are dropped.
func (f *progressFeed) report(p float32) bool {
	select {
	case f.updates <- p:
	default:
	}
	return true
}

// renderProgress draws a single updating progress line until done is closed,
// then draws whatever is still buffered.
func renderProgress(w io.Writer, updates <-chan float32, done <-chan struct{}) {
	drawn := false
	last := -1
	draw := func(p float32) {
		pct := clampPercent(p)
		if pct == last {
			return
		}
		last = pct
		drawn = true
		lipgloss.Fprint(w, "\r"+progressLine(pct))
	}

loop:
	for {
		select {
		case p := <-updates:
			draw(p)
		case <-done:
			break loop
		}
	}
	for n := len(updates); n > 0; n-- {
		draw(<-updates)
	}

	if drawn {
		fmt.Fprintln(w)
	}
}

func progressLine(pct int) string {
	filled := pct * progressWidth / 100
	bar := make([]rune, progressWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return fmt.Sprintf("importing %s %3d%%", progressStyle.Render(string(bar)), pct)
}

// clampPercent maps a progress fraction to 0..100. Assimp reports -1 when it
// has no estimate; that is drawn as 0.
func clampPercent(p float32) int {
	switch {
	case math.IsNaN(float64(p)) || p < 0:
		return 0
	case p > 1:
		return 100
	}
	return int(p*100 + 0.5)
}
