package main

import (
	"bytes"
	"strings"
	"testing"

	"badc0de.net/pkg/go-spritegrid/spritegrid"
	"badc0de.net/pkg/go-spritegrid/ttesting"
)

func TestPrintRect(t *testing.T) {
	var b bytes.Buffer
	if err := printRect(&b, spritegrid.DefaultConfig.Rect(2, 3), false); err != nil {
		t.Fatal(err)
	}
	ttesting.AssertEqualString(t, "text", b.String(), "{x: 96, y: 64, width: 32, height: 32}\n")

	b.Reset()
	if err := printRect(&b, spritegrid.DefaultConfig.Rect(2, 3), true); err != nil {
		t.Fatal(err)
	}
	ttesting.AssertEqualString(t, "json", b.String(), "{\"x\":96,\"y\":64,\"width\":32,\"height\":32}\n")
}

func TestPrintTable(t *testing.T) {
	var b bytes.Buffer
	printTable(&b, spritegrid.DefaultConfig, 2, 3, false)
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	ttesting.AssertEqualInt(t, "lines", len(lines), 3)
	ttesting.AssertEqualString(t, "header", lines[0], "                c0          c1          c2")
	ttesting.AssertEqualString(t, "first row", lines[1], "r0             0,0        32,0        64,0")
	ttesting.AssertEqualString(t, "second row", lines[2], "r1            0,32       32,32       64,32")
}

func TestPrintTableEmpty(t *testing.T) {
	var b bytes.Buffer
	printTable(&b, spritegrid.DefaultConfig, 0, 3, false)
	ttesting.AssertEqualInt(t, "length", b.Len(), 0)
}

func TestFitColumns(t *testing.T) {
	ttesting.AssertEqualInt(t, "80 cols", fitColumns(80), 6)
	ttesting.AssertEqualInt(t, "narrow", fitColumns(10), 1)
	ttesting.AssertEqualInt(t, "zero", fitColumns(0), 1)
}

func TestPrintBanner(t *testing.T) {
	var b bytes.Buffer
	printBanner(&b)
	if strings.Count(b.String(), "\n") < 2 {
		t.Errorf("banner %q should span several lines", b.String())
	}
}
