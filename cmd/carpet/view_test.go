package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ohad-Ma/carpet-maker-2/carpet"
)

func newSimViewer(t *testing.T, w, h, cols, rows int) (tcell.SimulationScreen, *viewer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	mask, err := carpet.Mask(cols, rows)
	require.NoError(t, err)

	return screen, newViewer(screen, mask, 'a', 'b')
}

// TestViewer_DrawCentred checks the carpet lands centred above the status bar.
func TestViewer_DrawCentred(t *testing.T) {
	screen, v := newSimViewer(t, 20, 10, 5, 7)
	v.draw()

	// origin is ((20-5)/2, (10-1-7)/2) = (7, 1)
	want := []string{"aaaaa", "abbba", "ababa", "ababa", "ababa", "abbba", "aaaaa"}
	for i, line := range want {
		for j, r := range line {
			got, _, _, _ := screen.GetContent(7+j, 1+i)
			assert.Equal(t, r, got, "cell (%d,%d)", 7+j, 1+i)
		}
	}

	got, _, _, _ := screen.GetContent(0, 9)
	assert.Equal(t, '5', got, "status bar starts with the carpet size")
}

// TestViewer_Clipped anchors oversized carpets at the top-left corner.
func TestViewer_Clipped(t *testing.T) {
	screen, v := newSimViewer(t, 4, 3, 9, 9)
	x, y := v.origin(4, 3)
	assert.Zero(t, x)
	assert.Zero(t, y)

	v.draw()
	got, _, _, _ := screen.GetContent(1, 1)
	assert.Equal(t, 'b', got)
}

// TestViewer_Handle covers resize and quit keys.
func TestViewer_Handle(t *testing.T) {
	_, v := newSimViewer(t, 20, 10, 3, 3)
	assert.False(t, v.handle(tcell.NewEventResize(30, 12)))

	assert.True(t, isQuitKey(tcell.KeyEscape, 0))
	assert.True(t, isQuitKey(tcell.KeyCtrlC, 0))
	assert.True(t, isQuitKey(tcell.KeyRune, 'q'))
	assert.False(t, isQuitKey(tcell.KeyRune, 'x'))
	assert.False(t, isQuitKey(tcell.KeyEnter, 0))
}
