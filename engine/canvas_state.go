package engine

import "github.com/gdamore/tcell/v2"

// PaintedCell is one painted terminal cell, 1-indexed
type PaintedCell struct {
	Col   int
	Row   int
	Color tcell.Color
}

// CanvasState owns everything the user has drawn plus the drawing flag and palette.
// The matrix is append-only: repainting a coordinate adds a new entry drawn
// over the older ones, nothing is merged.
type CanvasState struct {
	matrix  []PaintedCell
	drawing bool
	palette Palette
}

// NewCanvasState returns an empty canvas with drawing off and the first color active
func NewCanvasState() *CanvasState {
	return &CanvasState{}
}

// Paint appends a cell
func (s *CanvasState) Paint(col, row int, color tcell.Color) {
	s.matrix = append(s.matrix, PaintedCell{Col: col, Row: row, Color: color})
}

// Clear drops every painted cell and turns drawing off
func (s *CanvasState) Clear() {
	s.matrix = nil
	s.drawing = false
}

// ToggleDrawing flips drawing mode
func (s *CanvasState) ToggleDrawing() {
	s.drawing = !s.drawing
}

// Drawing reports whether moving the cursor paints
func (s *CanvasState) Drawing() bool {
	return s.drawing
}

// Cells returns the matrix in append order. Callers must not modify it
func (s *CanvasState) Cells() []PaintedCell {
	return s.matrix
}

// Len returns the number of painted entries, duplicates included
func (s *CanvasState) Len() int {
	return len(s.matrix)
}

// Palette returns the active palette
func (s *CanvasState) Palette() *Palette {
	return &s.palette
}
