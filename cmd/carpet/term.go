package main

import "golang.org/x/term"

// exceedsTerminal reports the width of the terminal behind fd and whether
// cols glyphs would wrap in it. Non-terminals never exceed.
func exceedsTerminal(fd, cols int) (int, bool) {
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, cols > width
}
