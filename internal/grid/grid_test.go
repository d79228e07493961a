// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellsEqual(t *testing.T) {
	a := &Coordinate{Row: 2, Column: 1, Region: RegionBody}
	same := &Coordinate{Row: 2, Column: 1, Region: RegionBody}
	otherRegion := &Coordinate{Row: 2, Column: 1, Region: RegionRowHeader}
	otherCol := &Coordinate{Row: 2, Column: 3, Region: RegionBody}

	tests := []struct {
		name string
		a, b *Coordinate
		want bool
	}{
		{"reflexive", a, a, true},
		{"distinct pointers same cell", a, same, true},
		{"region differs", a, otherRegion, false},
		{"column differs", a, otherCol, false},
		{"both nil", nil, nil, true},
		{"nil vs set", nil, a, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellsEqual(tt.a, tt.b))
			assert.Equal(t, CellsEqual(tt.a, tt.b), CellsEqual(tt.b, tt.a), "symmetry")
		})
	}
}

func TestRangeNormalize(t *testing.T) {
	r := Range{
		Start: Coordinate{Row: 5, Column: 3, Region: RegionBody},
		End:   Coordinate{Row: 1, Column: 0, Region: RegionRowHeader},
	}
	n := r.Normalize()

	assert.Equal(t, Coordinate{Row: 1, Column: 0, Region: RegionRowHeader}, n.Start)
	assert.Equal(t, Coordinate{Row: 5, Column: 3, Region: RegionBody}, n.End)
	assert.Equal(t, 5, r.Rows())

	// Already ordered ranges are untouched.
	assert.Equal(t, n, n.Normalize())
}

func TestRangeNormalizeSameRegion(t *testing.T) {
	r := Range{
		Start: Coordinate{Row: 0, Column: 4},
		End:   Coordinate{Row: 0, Column: 2},
	}
	n := r.Normalize()
	assert.Equal(t, 2, n.Start.Column)
	assert.Equal(t, 4, n.End.Column)
}

func TestNewCellConfigDefaults(t *testing.T) {
	cfg := NewCellConfig()
	assert.Equal(t, 0, cfg.Row)
	assert.Equal(t, 0, cfg.Column)
	assert.Equal(t, 0, cfg.Value)
	assert.Equal(t, RegionBody, cfg.Region)
	assert.Zero(t, cfg.Width)

	cfg = NewCellConfig(WithRow(3), WithRegion(RegionRowHeader), WithValue("x"))
	assert.Equal(t, 3, cfg.Row)
	assert.Equal(t, RegionRowHeader, cfg.Region)
	assert.Equal(t, "x", cfg.Value)
}

type label struct{ text string }

func (l *label) String() string { return l.text }

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{[]byte("raw"), "raw"},
		{42, "42"},
		{3.5, "3.5"},
		{true, "true"},
		{time.Duration(0), "0s"},
		{&label{text: "tag"}, "tag"},
		{(*label)(nil), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stringify(tt.in))
	}
}

func TestColumnFormatCell(t *testing.T) {
	plain := Column{Name: "A"}
	assert.Equal(t, "7", plain.FormatCell(NewCellConfig(WithValue(7))))

	upper := Column{Name: "B", Format: func(c CellFormatConfig) string {
		return "<" + Stringify(c.Value) + ">"
	}}
	assert.Equal(t, "<v>", upper.FormatCell(NewCellConfig(WithValue("v"))))
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "body", RegionBody.String())
	assert.Equal(t, "rowHeaders", RegionRowHeader.String())
	assert.Equal(t, "colHeaders", RegionColumnHeader.String())
	assert.Equal(t, "corner", RegionCorner.String())
}
