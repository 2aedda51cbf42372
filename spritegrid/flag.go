package spritegrid

import (
	"flag"
)

// SetupConfigFlags registers flags on fs that populate c, defaulting to
// DefaultConfig. Pass flag.CommandLine for the process-wide flag set.
func SetupConfigFlags(fs *flag.FlagSet, c *Config) {
	fs.IntVar(&c.SpriteWidth, "sprite_width", DefaultConfig.SpriteWidth, "Width of a single sprite, in pixels")
	fs.IntVar(&c.SpriteHeight, "sprite_height", DefaultConfig.SpriteHeight, "Height of a single sprite, in pixels")
	fs.IntVar(&c.HorizontalSpacing, "horizontal_spacing", DefaultConfig.HorizontalSpacing, "Gap between horizontally adjacent sprites, in pixels")
	fs.IntVar(&c.VerticalSpacing, "vertical_spacing", DefaultConfig.VerticalSpacing, "Gap between vertically adjacent sprites, in pixels")
}
