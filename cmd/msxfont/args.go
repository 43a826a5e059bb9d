package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zhimiaox/msxfont"
)

// parseIndex accepts decimal, 0x hex, 0o octal or 0b binary.
func parseIndex(what, s string, limit int) (int, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	if v < 0 || v >= int64(limit) {
		return 0, &msxfont.IndexError{What: what, Value: int(v), Limit: limit}
	}
	return int(v), nil
}

func parseGlyph(s string) (int, error) {
	return parseIndex("glyph", s, msxfont.NumGlyphs)
}

func parseGlyphs(args []string) ([]int, error) {
	glyphs := make([]int, 0, len(args))
	for _, s := range args {
		g, err := parseGlyph(s)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

func parsePoint(xs, ys string) (x, y int, err error) {
	if x, err = parseIndex("x", xs, msxfont.GlyphWidth); err != nil {
		return 0, 0, err
	}
	if y, err = parseIndex("y", ys, msxfont.GlyphHeight); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("invalid pixel value %q, want 0 or 1", s)
}

// writeOutput runs fn against path, or against stdout when path is "-".
// A failed write removes the partial file.
func writeOutput(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
