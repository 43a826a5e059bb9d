package main

import (
	"errors"
	"image"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/charset"
	"github.com/zhimiaox/msxfont/internal/config"
	"github.com/zhimiaox/msxfont/lvgl"
	"github.com/zhimiaox/msxfont/render"
	"github.com/zhimiaox/msxfont/text"
	"github.com/zhimiaox/msxfont/ttf"
)

const asciiRunes = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// resolveScale falls back to the configured scale when the flag is unset.
func (a *app) resolveScale(flag int) (int, error) {
	if flag == 0 {
		return a.cfg.Scale, nil
	}
	if err := config.ValidateScale(flag); err != nil {
		return 0, err
	}
	return flag, nil
}

func (a *app) exportPNGCmd() *cobra.Command {
	var (
		output string
		scale  int
		glyph  string
	)
	cmd := &cobra.Command{
		Use:   "export-png <font>",
		Short: "Render the font as a 16x16 PNG sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := msxfont.ParseFile(args[0])
			if err != nil {
				return err
			}
			px, err := a.resolveScale(scale)
			if err != nil {
				return err
			}
			var img image.Image
			if glyph != "" {
				g, err := parseGlyph(glyph)
				if err != nil {
					return err
				}
				img, err = render.GlyphImage(f, g, px)
				if err != nil {
					return err
				}
			} else {
				if img, err = render.Sheet(f, px); err != nil {
					return err
				}
			}
			a.logger.Debug("exporting png", "scale", px, "bounds", img.Bounds())
			return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return render.EncodePNG(w, img)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file, - for stdout (required)")
	cmd.Flags().IntVar(&scale, "scale", 0, "Pixel scale (defaults to MSXFONT_SCALE)")
	cmd.Flags().StringVar(&glyph, "glyph", "", "Render a single glyph instead of the sheet")
	mustMarkRequired(cmd, "output")
	return cmd
}

func (a *app) importPNGCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "import-png <png>",
		Short: "Build a font from a 16x16 glyph sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			f, err := render.DecodeSheet(in)
			if err != nil {
				return err
			}
			return f.Save(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output font file (required)")
	mustMarkRequired(cmd, "output")
	return cmd
}

func (a *app) exportTextCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export-text <font>",
		Short: "Write the font in the editable text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := msxfont.ParseFile(args[0])
			if err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return text.Encode(w, f)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output text file, - for stdout")
	return cmd
}

func (a *app) importTextCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "import-text <txt>",
		Short: "Build a font from the text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			f, err := text.Decode(in)
			if err != nil {
				return err
			}
			return f.Save(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output font file (required)")
	mustMarkRequired(cmd, "output")
	return cmd
}

func (a *app) exportLVGLCmd() *cobra.Command {
	var (
		output string
		runes  string
	)
	cmd := &cobra.Command{
		Use:   "export-lvgl <font>",
		Short: "Export glyphs as an LVGL binary font",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := msxfont.ParseFile(args[0])
			if err != nil {
				return err
			}
			bin, err := lvgl.NewFont(f, charset.Default, []rune(runes))
			if err != nil {
				return err
			}
			if bin == nil {
				return errors.New("no exportable runes")
			}
			a.logger.Info("lvgl font built", "runes", utf8.RuneCountInString(runes), "bytes", len(bin))
			return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				_, err := w.Write(bin)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output .bin file (required)")
	cmd.Flags().StringVar(&runes, "runes", asciiRunes, "Characters to export")
	mustMarkRequired(cmd, "output")
	return cmd
}

func (a *app) importTTFCmd() *cobra.Command {
	var (
		output string
		opts   ttf.Options
	)
	cmd := &cobra.Command{
		Use:   "import-ttf <ttf>",
		Short: "Rasterise a TrueType font into an MSX font",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Threshold == 0 {
				return errors.New("threshold must be between 1 and 255")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			f, err := ttf.Import(data, &opts)
			if err != nil {
				return err
			}
			return f.Save(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output font file (required)")
	cmd.Flags().Float64Var(&opts.Size, "size", 8, "Pixel size to render at")
	cmd.Flags().Uint8Var(&opts.Threshold, "threshold", 0x80, "Minimum coverage for a set pixel (1..255)")
	cmd.Flags().BoolVar(&opts.Controls, "controls", false, "Also render glyphs below 0x20")
	mustMarkRequired(cmd, "output")
	return cmd
}

func (a *app) previewCmd() *cobra.Command {
	var (
		output string
		scale  int
	)
	cmd := &cobra.Command{
		Use:   "preview <font> <text>",
		Short: "Render a line of text with the font as PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := msxfont.ParseFile(args[0])
			if err != nil {
				return err
			}
			px, err := a.resolveScale(scale)
			if err != nil {
				return err
			}
			face, err := render.NewFace(f, charset.Default)
			if err != nil {
				return err
			}
			n := max(utf8.RuneCountInString(args[1]), 1)
			line := image.NewPaletted(image.Rect(0, 0, n*msxfont.GlyphWidth, msxfont.GlyphHeight), render.Palette)
			render.DrawString(line, face, image.Point{}, args[1])

			dst := image.NewPaletted(image.Rect(0, 0, line.Rect.Dx()*px, line.Rect.Dy()*px), render.Palette)
			draw.NearestNeighbor.Scale(dst, dst.Bounds(), line, line.Bounds(), draw.Src, nil)
			return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return render.EncodePNG(w, dst)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file, - for stdout (required)")
	cmd.Flags().IntVar(&scale, "scale", 0, "Pixel scale (defaults to MSXFONT_SCALE)")
	mustMarkRequired(cmd, "output")
	return cmd
}
