// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package matrix turns a grid selection into an ordered matrix of display
// values.
//
// Resolver reads the active selection (or synthesizes one covering the whole
// dataset) and Builder walks the resolved rows and columns, running every
// column's formatter.
//
// # Usage
//
//	res := matrix.NewResolver(rows, cols, sel)
//	s, ok := res.SelectedCells()
//	if !ok {
//	    s = res.AllCells()
//	}
//	m := matrix.NewBuilder(rows, cols).Cells(s.Rows, s.Columns)
package matrix
