package main

import (
	"flag"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-spritegrid/spritegrid"

	"github.com/golang/glog"
	"github.com/gookit/color"
)

var (
	row      = flag.Int("row", 2, "grid row of the sprite to locate")
	col      = flag.Int("col", 3, "grid column of the sprite to locate")
	table    = flag.Bool("table", false, "whether to print a table of offsets instead of a single sprite")
	rows     = flag.Int("rows", 8, "rows to print with -table")
	cols     = flag.Int("cols", 0, "columns to print with -table; 0 fits the terminal width")
	asJSON   = flag.Bool("json", false, "whether to print the sprite as json")
	useColor = flag.Bool("color", true, "whether to color table headers")
	banner   = flag.Bool("banner", false, "whether to print a banner first")
	strict   = flag.Bool("strict", false, "whether to refuse negative grid indices")

	cfg spritegrid.Config
)

func tableColumns() int {
	if *cols > 0 {
		return *cols
	}
	sz, err := GetTermSize()
	if err != nil || sz.WSCol == 0 {
		glog.V(1).Infof("could not get terminal size, assuming 80 columns: %v", err)
		return fitColumns(80)
	}
	return fitColumns(sz.WSCol)
}

func main() {
	spritegrid.SetupConfigFlags(flag.CommandLine, &cfg)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if err := cfg.Validate(); err != nil {
		glog.Fatalf("bad sheet layout: %v", err)
	}
	if !*useColor {
		color.Enable = false
	}

	if *banner {
		printBanner(os.Stdout)
	}

	if *table {
		printTable(os.Stdout, cfg, *rows, tableColumns(), *useColor)
		return
	}

	r := cfg.Rect(*row, *col)
	if *strict {
		var err error
		if r, err = cfg.CheckedRect(*row, *col); err != nil {
			glog.Exitf("locating sprite: %v", err)
		}
	}
	if err := printRect(os.Stdout, r, *asJSON); err != nil {
		glog.Errorln("printing sprite", err)
		os.Exit(1)
	}
}
