// Package session holds the editing state that surrounds a font: which
// glyph is selected, where the font lives on disk and whether it has
// unsaved edits. A Session references the Font it edits; the Font itself
// knows nothing about sessions.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zhimiaox/msxfont"
)

// AllGlyphs is passed to watchers when the whole font was replaced.
const AllGlyphs = -1

// ErrNoPath is returned by Save when the font has never been saved and the
// prompter supplied no file name.
var ErrNoPath = errors.New("session: no file name")

// ErrNoPrompter is returned when a workflow needs to ask the user
// something and was given a nil Prompter.
var ErrNoPrompter = errors.New("session: no prompter")

// Choice is the answer to a save-before-discard prompt.
type Choice int

const (
	Cancel Choice = iota
	Save
	Discard
)

func (c Choice) String() string {
	switch c {
	case Cancel:
		return "cancel"
	case Save:
		return "save"
	case Discard:
		return "discard"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Prompter is the user-facing side of the session workflows.
type Prompter interface {
	// ConfirmDiscard asks what to do with unsaved changes.
	ConfirmDiscard() Choice
	// SavePath asks for a file name to save under; ok is false when the
	// user backed out.
	SavePath() (path string, ok bool)
}

type Session struct {
	font     *msxfont.Font
	path     string
	selected int
	modified bool
	watchers []func(glyph int)
	logger   *slog.Logger
}

type Option func(*Session)

// WithLogger sets the logger used for workflow events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New starts a session on a blank, unnamed font.
func New(opts ...Option) *Session {
	s := &Session{
		font:   msxfont.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a session on the font stored at path.
func Open(path string, opts ...Option) (*Session, error) {
	f, err := msxfont.ParseFile(path)
	if err != nil {
		return nil, err
	}
	s := New(opts...)
	s.font = f
	s.path = path
	return s, nil
}

func (s *Session) Font() *msxfont.Font { return s.font }

func (s *Session) Path() string { return s.path }

func (s *Session) Selected() int { return s.selected }

func (s *Session) Modified() bool { return s.modified }

// Title describes the selection the way the editor labels it.
func (s *Session) Title() string {
	return fmt.Sprintf("Selected item: %d (%X)", s.selected, s.selected)
}

// Watch registers fn to be called with the index of every glyph that
// changes, or AllGlyphs when the font is replaced.
func (s *Session) Watch(fn func(glyph int)) {
	s.watchers = append(s.watchers, fn)
}

func (s *Session) notify(glyph int) {
	for _, fn := range s.watchers {
		fn(glyph)
	}
}

// Select makes glyph the target of pixel edits.
func (s *Session) Select(glyph int) error {
	if glyph < 0 || glyph >= msxfont.NumGlyphs {
		return &msxfont.IndexError{What: "glyph", Value: glyph, Limit: msxfont.NumGlyphs}
	}
	s.selected = glyph
	return nil
}

// Pixel reads a pixel of the selected glyph.
func (s *Session) Pixel(x, y int) (bool, error) {
	return s.font.Pixel(s.selected, x, y)
}

// SetPixel writes a pixel of the selected glyph.
func (s *Session) SetPixel(x, y int, v bool) error {
	if err := s.font.SetPixel(s.selected, x, y, v); err != nil {
		return err
	}
	s.touch(s.selected)
	return nil
}

// TogglePixel flips a pixel of the selected glyph and returns its new value.
func (s *Session) TogglePixel(x, y int) (bool, error) {
	v, err := s.font.Pixel(s.selected, x, y)
	if err != nil {
		return false, err
	}
	v = !v
	if err := s.font.SetPixel(s.selected, x, y, v); err != nil {
		return false, err
	}
	s.touch(s.selected)
	return v, nil
}

// SetGlyph replaces the selected glyph.
func (s *Session) SetGlyph(rows [][]bool) error {
	if err := s.font.SetGlyph(s.selected, rows); err != nil {
		return err
	}
	s.touch(s.selected)
	return nil
}

func (s *Session) touch(glyph int) {
	s.modified = true
	s.notify(glyph)
}

func (s *Session) install(f *msxfont.Font, path string) {
	s.font = f
	s.path = path
	s.selected = 0
	s.modified = false
	s.notify(AllGlyphs)
}

// SaveAs writes the font to path and makes path the session's file.
func (s *Session) SaveAs(path string) error {
	if err := s.font.Save(path); err != nil {
		return err
	}
	s.path = path
	s.modified = false
	s.logger.Info("font saved", "path", path)
	return nil
}

// Save writes the font to its file, asking p for a name if it has none.
// p may be nil when the session already has a file.
func (s *Session) Save(p Prompter) error {
	path := s.path
	if path == "" {
		if p == nil {
			return ErrNoPrompter
		}
		var ok bool
		if path, ok = p.SavePath(); !ok || path == "" {
			return ErrNoPath
		}
	}
	return s.SaveAs(path)
}

// settle resolves unsaved changes before they would be lost. It reports
// whether the caller may go ahead. p is only consulted, and only required,
// when there are unsaved changes.
func (s *Session) settle(p Prompter) (bool, error) {
	if !s.modified {
		return true, nil
	}
	if p == nil {
		return false, ErrNoPrompter
	}
	choice := p.ConfirmDiscard()
	s.logger.Debug("unsaved changes", "choice", choice)
	switch choice {
	case Save:
		if err := s.Save(p); err != nil {
			return false, err
		}
		return true, nil
	case Discard:
		return true, nil
	default:
		return false, nil
	}
}

// NewFont replaces the font with a blank one. It reports false when the
// user cancelled.
func (s *Session) NewFont(p Prompter) (bool, error) {
	ok, err := s.settle(p)
	if !ok || err != nil {
		return false, err
	}
	s.install(msxfont.New(), "")
	return true, nil
}

// OpenFont replaces the font with the one stored at path. The current font
// stays in place if path cannot be loaded.
func (s *Session) OpenFont(path string, p Prompter) (bool, error) {
	ok, err := s.settle(p)
	if !ok || err != nil {
		return false, err
	}
	f, err := msxfont.ParseFile(path)
	if err != nil {
		return false, err
	}
	s.install(f, path)
	s.logger.Info("font opened", "path", path)
	return true, nil
}

// Quit reports whether the session may end.
func (s *Session) Quit(p Prompter) (bool, error) {
	return s.settle(p)
}
