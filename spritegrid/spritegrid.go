package spritegrid

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
)

// ErrInvalidIndex is returned by CheckedRect for a cell outside the
// non-negative quadrant of the grid.
var ErrInvalidIndex = errors.New("invalid grid index")

// Config describes the layout of a sprite sheet. It is treated as immutable
// once constructed.
type Config struct {
	SpriteWidth       int `json:"spriteWidth"`
	SpriteHeight      int `json:"spriteHeight"`
	HorizontalSpacing int `json:"horizontalSpacing"`
	VerticalSpacing   int `json:"verticalSpacing"`
}

// DefaultConfig is a sheet of 32x32 sprites packed with no spacing.
var DefaultConfig = Config{
	SpriteWidth:  32,
	SpriteHeight: 32,
}

// GridIndex identifies a cell of the sheet's grid.
type GridIndex struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Rect is the area occupied by a single sprite, in sheet pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StrideX is how far apart horizontally adjacent cells start.
func (c Config) StrideX() int {
	return c.SpriteWidth + c.HorizontalSpacing
}

// StrideY is how far apart vertically adjacent cells start.
func (c Config) StrideY() int {
	return c.SpriteHeight + c.VerticalSpacing
}

// Rect returns the rectangle of the sprite at the passed row and column.
//
// Any index is accepted. A negative row or column simply produces a negative
// offset; use CheckedRect to reject those.
func (c Config) Rect(row, column int) Rect {
	return Rect{
		X:      column * c.StrideX(),
		Y:      row * c.StrideY(),
		Width:  c.SpriteWidth,
		Height: c.SpriteHeight,
	}
}

// RectAt is Rect taking a GridIndex.
func (c Config) RectAt(idx GridIndex) Rect {
	return c.Rect(idx.Row, idx.Column)
}

// Calculator returns Rect bound to a copy of c.
func (c Config) Calculator() func(row, column int) Rect {
	return c.Rect
}

// CheckedRect is like Rect, but refuses negative indices with an error
// whose cause is ErrInvalidIndex.
func (c Config) CheckedRect(row, column int) (Rect, error) {
	if row < 0 || column < 0 {
		return Rect{}, errors.Wrapf(ErrInvalidIndex, "row %d, column %d", row, column)
	}
	return c.Rect(row, column), nil
}

// Validate rejects sizes and spacings that cannot describe a sheet.
func (c Config) Validate() error {
	switch {
	case c.SpriteWidth < 0:
		return errors.Errorf("sprite width must not be negative; got %d", c.SpriteWidth)
	case c.SpriteHeight < 0:
		return errors.Errorf("sprite height must not be negative; got %d", c.SpriteHeight)
	case c.HorizontalSpacing < 0:
		return errors.Errorf("horizontal spacing must not be negative; got %d", c.HorizontalSpacing)
	case c.VerticalSpacing < 0:
		return errors.Errorf("vertical spacing must not be negative; got %d", c.VerticalSpacing)
	}
	return nil
}

// Table returns the rectangles of the first rows x columns cells, indexed
// as [row][column]. Non-positive counts give an empty table.
func (c Config) Table(rows, columns int) [][]Rect {
	if rows <= 0 || columns <= 0 {
		return [][]Rect{}
	}
	calc := c.Calculator()
	t := make([][]Rect, rows)
	for row := range t {
		t[row] = make([]Rect, columns)
		for col := range t[row] {
			t[row][col] = calc(row, col)
		}
	}
	return t
}

// Rectangle converts r into an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("{x: %d, y: %d, width: %d, height: %d}", r.X, r.Y, r.Width, r.Height)
}
