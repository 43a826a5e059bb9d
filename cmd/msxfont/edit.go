package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/session"
	"github.com/zhimiaox/msxfont/text"
)

func (a *app) newCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a blank font file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New()
			if err := s.SaveAs(output); err != nil {
				return err
			}
			a.logger.Info("blank font created", "path", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output font file (required)")
	mustMarkRequired(cmd, "output")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <font> [glyph...]",
		Short: "Print glyphs as text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := msxfont.ParseFile(args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return text.Encode(cmd.OutOrStdout(), f)
			}
			glyphs, err := parseGlyphs(args[1:])
			if err != nil {
				return err
			}
			return text.EncodeGlyphs(cmd.OutOrStdout(), f, glyphs...)
		},
	}
}

// openAt opens the font and selects the glyph named on the command line.
func openAt(path, glyph string) (*session.Session, error) {
	g, err := parseGlyph(glyph)
	if err != nil {
		return nil, err
	}
	s, err := session.Open(path)
	if err != nil {
		return nil, err
	}
	if err := s.Select(g); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <font> <glyph> <x> <y> <0|1>",
		Short: "Set or clear one pixel and save the font",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openAt(args[0], args[1])
			if err != nil {
				return err
			}
			x, y, err := parsePoint(args[2], args[3])
			if err != nil {
				return err
			}
			v, err := parseBit(args[4])
			if err != nil {
				return err
			}
			if err := s.SetPixel(x, y, v); err != nil {
				return err
			}
			return s.SaveAs(s.Path())
		},
	}
}

func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <font> <glyph> <x> <y>",
		Short: "Flip one pixel, save the font and print the new value",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openAt(args[0], args[1])
			if err != nil {
				return err
			}
			x, y, err := parsePoint(args[2], args[3])
			if err != nil {
				return err
			}
			v, err := s.TogglePixel(x, y)
			if err != nil {
				return err
			}
			if err := s.SaveAs(s.Path()); err != nil {
				return err
			}
			bit := 0
			if v {
				bit = 1
			}
			fmt.Fprintln(cmd.OutOrStdout(), bit)
			return nil
		},
	}
}

func mustMarkRequired(cmd *cobra.Command, name string) {
	if err := cmd.MarkFlagRequired(name); err != nil {
		panic(err)
	}
}
