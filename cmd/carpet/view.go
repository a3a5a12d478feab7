package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Ohad-Ma/carpet-maker-2/grid"
)

// viewer draws a carpet mask centred on a tcell screen.
type viewer struct {
	screen             tcell.Screen
	mask               *grid.Dense
	primary, secondary rune
	primaryStyle       tcell.Style
	secondaryStyle     tcell.Style
	statusStyle        tcell.Style
}

func newViewer(screen tcell.Screen, mask *grid.Dense, primary, secondary byte) *viewer {
	return &viewer{
		screen:         screen,
		mask:           mask,
		primary:        rune(primary),
		secondary:      rune(secondary),
		primaryStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		secondaryStyle: tcell.StyleDefault.Foreground(tcell.ColorBlue),
		statusStyle:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// origin returns the top-left screen cell of the carpet for a w×h screen.
// Carpets larger than the screen are anchored at (0,0) and clipped.
func (v *viewer) origin(w, h int) (int, int) {
	x := (w - v.mask.Cols()) / 2
	y := (h - 1 - v.mask.Rows()) / 2 // last line is the status bar
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return x, y
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	ox, oy := v.origin(w, h)

	for i := 0; i < v.mask.Rows() && oy+i < h-1; i++ {
		for j, cell := range v.mask.Row(i) {
			if ox+j >= w {
				break
			}
			if cell == 0 {
				v.screen.SetContent(ox+j, oy+i, v.primary, nil, v.primaryStyle)
			} else {
				v.screen.SetContent(ox+j, oy+i, v.secondary, nil, v.secondaryStyle)
			}
		}
	}

	status := fmt.Sprintf("%dx%d  q/Esc to quit", v.mask.Cols(), v.mask.Rows())
	for k, r := range status {
		if k >= w {
			break
		}
		v.screen.SetContent(k, h-1, r, nil, v.statusStyle)
	}
	v.screen.Show()
}

// handle processes one event and reports whether the viewer should exit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return isQuitKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}

	return false
}

// isQuitKey matches Esc, Ctrl+C and 'q'.
func isQuitKey(k tcell.Key, r rune) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && (r == 'q' || r == 'Q'))
}

// loop redraws and polls until a quit key arrives or the screen is finalized.
func (v *viewer) loop() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		if ev == nil || v.handle(ev) {
			return
		}
	}
}

// runView opens the terminal, shows mask until the user quits, then restores it.
func runView(mask *grid.Dense, primary, secondary byte) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	defer screen.Fini()

	newViewer(screen, mask, primary, secondary).loop()

	return nil
}
