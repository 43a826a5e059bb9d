package msxfont

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	NumGlyphs   = 256
	GlyphWidth  = 8
	GlyphHeight = 8

	// FontSize is the exact size of a font in memory and on disk: one byte
	// per glyph row, MSB = leftmost pixel. This is the MSX character ROM
	// layout; there is no header, magic or checksum.
	FontSize = NumGlyphs * GlyphHeight
)

// Font is an MSX character set. The zero value is not usable; construct
// one with New, NewFromBytes, Parse or ParseFile.
//
// A Font exclusively owns its buffer and is not safe for concurrent
// mutation.
type Font struct {
	data [FontSize]byte
}

// New returns a blank font: every pixel of every glyph is clear.
func New() *Font {
	return &Font{}
}

// NewFromBytes returns a font holding a private copy of data, which must be
// exactly FontSize bytes long.
func NewFromBytes(data []byte) (*Font, error) {
	if len(data) != FontSize {
		return nil, formatErrorf("font data is %d bytes, want %d", len(data), FontSize)
	}
	f := new(Font)
	copy(f.data[:], data)
	return f, nil
}

// Parse reads a whole font from r.
func Parse(r io.Reader) (*Font, error) {
	// one byte past the limit is enough to tell an oversized file apart
	data, err := io.ReadAll(io.LimitReader(r, FontSize+1))
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return NewFromBytes(data)
}

// ParseFile loads the font stored at filePath.
func ParseFile(filePath string) (*Font, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: filePath, Err: err}
	}
	defer f.Close()

	fnt, err := Parse(f)
	if ioErr, ok := err.(*IOError); ok {
		ioErr.Path = filePath
	}
	return fnt, err
}

// Write writes the raw font bytes to w.
func (f *Font) Write(w io.Writer) error {
	n, err := w.Write(f.data[:])
	if err == nil && n != FontSize {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Save writes the font to filePath. The bytes go to a temporary file next
// to the destination which is then renamed over it, so a failed save leaves
// any previous file in place. Symlinks are followed and an existing file
// keeps its permissions.
func (f *Font) Save(filePath string) error {
	target, mode, err := saveTarget(filePath)
	if err != nil {
		return &IOError{Op: "save", Path: filePath, Err: err}
	}
	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return &IOError{Op: "save", Path: filePath, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Op: "save", Path: filePath, Err: err}
	}

	if _, err := tmp.Write(f.data[:]); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "save", Path: filePath, Err: err}
	}
	return nil
}

// saveTarget returns the file a save of filePath replaces and the
// permissions the new file gets. An existing target must be a regular file
// the caller is allowed to write.
func saveTarget(filePath string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		// a dangling link still names the file to create
		if dest, lerr := os.Readlink(filePath); lerr == nil {
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(filepath.Dir(filePath), dest)
			}
			return dest, 0o644, nil
		}
		return filePath, 0o644, nil
	}
	if err != nil {
		return "", 0, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	if !info.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%s is not a regular file", target)
	}
	w, err := os.OpenFile(target, os.O_WRONLY, 0)
	if err != nil {
		return "", 0, err
	}
	w.Close()
	return target, info.Mode().Perm(), nil
}

// Bytes returns a copy of the font data.
func (f *Font) Bytes() []byte {
	return bytes.Clone(f.data[:])
}

// Clone returns an independent copy of f.
func (f *Font) Clone() *Font {
	c := *f
	return &c
}

// Equal reports whether f and o hold identical data.
func (f *Font) Equal(o *Font) bool {
	return f.data == o.data
}

// Pixel reports whether pixel (x, y) of glyph is set.
func (f *Font) Pixel(glyph, x, y int) (bool, error) {
	off, err := f.offset(glyph, x, y)
	if err != nil {
		return false, err
	}
	return f.data[off]&(1<<(7-x)) != 0, nil
}

// SetPixel sets or clears pixel (x, y) of glyph, leaving every other bit of
// the row untouched.
func (f *Font) SetPixel(glyph, x, y int, v bool) error {
	off, err := f.offset(glyph, x, y)
	if err != nil {
		return err
	}
	mask := byte(1) << (7 - x)
	row := f.data[off] &^ mask
	if v {
		row |= mask
	}
	f.data[off] = row
	return nil
}

// Glyph decodes one glyph. The result is a copy.
func (f *Font) Glyph(glyph int) (Glyph, error) {
	rows, err := f.GlyphBytes(glyph)
	if err != nil {
		return Glyph{}, err
	}
	var g Glyph
	for y, row := range rows {
		g[y] = DecodeRow(row)
	}
	return g, nil
}

// SetGlyph replaces one glyph. rows must hold exactly GlyphHeight rows of
// GlyphWidth pixels; nothing is written unless the whole matrix is valid.
func (f *Font) SetGlyph(glyph int, rows [][]bool) error {
	g, err := glyphIndex(glyph)
	if err != nil {
		return err
	}
	if len(rows) != GlyphHeight {
		return formatErrorf("a glyph has %d rows, not %d", len(rows), GlyphHeight)
	}
	var enc [GlyphHeight]byte
	for y, row := range rows {
		if len(row) != GlyphWidth {
			return formatErrorf("glyph row %d has %d pixels, not %d", y, len(row), GlyphWidth)
		}
		enc[y] = EncodeRow([GlyphWidth]bool(row))
	}
	copy(f.data[int(g)*GlyphHeight:], enc[:])
	return nil
}

// GlyphBytes returns the raw row bytes of a glyph.
func (f *Font) GlyphBytes(glyph int) ([GlyphHeight]byte, error) {
	g, err := glyphIndex(glyph)
	if err != nil {
		return [GlyphHeight]byte{}, err
	}
	off := int(g) * GlyphHeight
	return [GlyphHeight]byte(f.data[off : off+GlyphHeight]), nil
}

// IsBlank reports whether no pixel of glyph is set.
func (f *Font) IsBlank(glyph int) (bool, error) {
	rows, err := f.GlyphBytes(glyph)
	if err != nil {
		return false, err
	}
	return rows == [GlyphHeight]byte{}, nil
}

func (f *Font) offset(glyph, x, y int) (int, error) {
	g, err := glyphIndex(glyph)
	if err != nil {
		return 0, err
	}
	if err := coord("x", x, GlyphWidth); err != nil {
		return 0, err
	}
	if err := coord("y", y, GlyphHeight); err != nil {
		return 0, err
	}
	return int(g)*GlyphHeight + y, nil
}
