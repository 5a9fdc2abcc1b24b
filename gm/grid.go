// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

import "github.com/cpmech/gosl/chk"

// Grid is a row-major dense 2D array. len(data) must equal rows*cols;
// both rows and cols must be >= 2 for every meshable use in this kernel.
type Grid[T any] struct {
	data []T
	rows int
	cols int
}

// NewGrid allocates a rows×cols grid with zero-valued entries.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows < 1 || cols < 1 {
		chk.Panic("gm.NewGrid: rows and cols must be >= 1; got rows=%d cols=%d", rows, cols)
	}
	return &Grid[T]{data: make([]T, rows*cols), rows: rows, cols: cols}
}

// GridFromSlice wraps data (row-major, rows determined by len(data)/cols)
// as a Grid without copying.
func GridFromSlice[T any](data []T, cols int) *Grid[T] {
	if cols < 1 || len(data)%cols != 0 {
		chk.Panic("gm.GridFromSlice: len(data)=%d is not a multiple of cols=%d", len(data), cols)
	}
	return &Grid[T]{data: data, rows: len(data) / cols, cols: cols}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// At returns the value at (row,col).
func (g *Grid[T]) At(row, col int) T { return g.data[row*g.cols+col] }

// Set stores value at (row,col).
func (g *Grid[T]) Set(row, col int, value T) { g.data[row*g.cols+col] = value }

// Data returns the underlying row-major slice without copying.
func (g *Grid[T]) Data() []T { return g.data }
