// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/jeranaias/gridcopy/internal/hover"
)

// =============================================================================
// GESTURE
// =============================================================================

// gesture is the pointer interaction in progress. It implements
// hover.InteractionMode.
type gesture struct {
	mode hover.Mode

	// from is the body position of the dragged or resized column.
	from int
	// target is the body position a dragged column would drop on.
	target int
	// field is the record field of the resized column.
	field int

	startX     int
	startWidth int
}

func (g *gesture) Mode() hover.Mode {
	return g.mode
}

func (g *gesture) reset() {
	*g = gesture{}
}

// =============================================================================
// POINTER
// =============================================================================

// pointer records the requested cursor shape. Terminals cannot change the
// mouse cursor, so the status bar shows a link hint instead.
type pointer struct {
	cursor hover.Cursor
}

func (p *pointer) SetCursor(c hover.Cursor) {
	p.cursor = c
}

// =============================================================================
// KEY GATE
// =============================================================================

// keyGate drops key presses while a clipboard write is in flight. It
// implements export.FocusSuppressor.
type keyGate struct {
	held atomic.Int32
}

func (g *keyGate) Suppress() func() {
	g.held.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { g.held.Add(-1) })
	}
}

func (g *keyGate) suppressed() bool {
	return g.held.Load() > 0
}

// =============================================================================
// LINE CACHE
// =============================================================================

// lineCache keeps rendered screen lines. It implements grid.Renderer: a
// repaint drops the cached lines the region covers.
type lineCache struct {
	lines   map[int]string
	renders int
}

func newLineCache() *lineCache {
	return &lineCache{lines: make(map[int]string)}
}

// RepaintRegion invalidates the screen lines from y to y+height.
func (c *lineCache) RepaintRegion(region string, x, y, width, height float64) {
	first := int(math.Floor(y))
	last := int(math.Ceil(y+height)) - 1
	if last < first {
		last = first
	}
	for i := first; i <= last; i++ {
		delete(c.lines, i)
	}
}

func (c *lineCache) get(y int, render func() string) string {
	if s, ok := c.lines[y]; ok {
		return s
	}
	s := render()
	c.lines[y] = s
	c.renders++
	return s
}

func (c *lineCache) invalidateAll() {
	clear(c.lines)
}
