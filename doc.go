// Package carpetmaker renders textual "carpets": rectangles of two glyphs
// arranged in concentric bands.
//
// 🚀 What is a carpet?
//
//	Every cell gets its distance to the nearer of two L-shaped borders
//	(top-left and bottom-right). The parity of that distance picks the
//	glyph, so bands alternate from the outside in:
//
//	    #######
//	    #*****#
//	    #*###*#
//	    #*****#
//	    #######
//
// Under the hood:
//
//	carpet/     — glyph validation, distance tables, mask and rendering
//	grid/       — row-major int grid with reflection and element-wise kernels
//	cmd/carpet/ — command-line driver with an optional terminal viewer
//
//	go get github.com/Ohad-Ma/carpet-maker-2/carpet
package carpetmaker
