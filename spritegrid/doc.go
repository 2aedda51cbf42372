// Package spritegrid maps a cell of a sprite sheet's grid to the pixel
// rectangle the sprite occupies in the sheet.
//
// All sprites in a sheet share a single size, and adjacent cells may be
// separated by a fixed horizontal and vertical gap. The sheet itself is never
// read; callers pass the resulting rectangle to whatever actually holds the
// pixels.
package spritegrid
