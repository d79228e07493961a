// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a truncated cell.
const Ellipsis = "…"

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width display columns, ending in an
// ellipsis when anything was cut. Wide runes are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Fit truncates s to width and pads it with spaces to exactly width columns.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// SingleLine collapses line breaks and tabs so a value fits one grid row.
func SingleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	r := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
	return r.Replace(s)
}
