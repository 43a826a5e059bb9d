package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/zhimiaox/msxfont"
	"github.com/zhimiaox/msxfont/internal/config"
	"github.com/zhimiaox/msxfont/internal/logging"
	"github.com/zhimiaox/msxfont/session"
)

const version = "0.1.0"

type app struct {
	cfg      *config.Config
	logger   hclog.Logger
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "msxfont [font-file]",
		Short:         "Edit MSX 8x8 bitmap fonts",
		Long:          `Inspect, edit and convert 2048 byte MSX font files.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.summary,
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		a.newCmd(),
		a.showCmd(),
		a.setCmd(),
		a.toggleCmd(),
		a.exportPNGCmd(),
		a.importPNGCmd(),
		a.exportTextCmd(),
		a.importTextCmd(),
		a.exportLVGLCmd(),
		a.importTTFCmd(),
		a.previewCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q (trace, debug, info, warn, error, off)", cfg.LogLevel)
	}
	a.cfg = cfg
	a.logger = logging.NewLogger("msxfont", cfg.LogLevel, cfg.JSONLog, cmd.ErrOrStderr())
	slog.SetDefault(slog.New(logging.NewHandler(a.logger)))
	a.logger.Debug("configuration loaded", "level", cfg.LogLevel, "scale", cfg.Scale)
	return nil
}

func (a *app) summary(cmd *cobra.Command, args []string) error {
	s := session.New()
	if len(args) == 1 {
		var err error
		if s, err = session.Open(args[0]); err != nil {
			return err
		}
	}

	used := 0
	for g := range msxfont.NumGlyphs {
		blank, err := s.Font().IsBlank(g)
		if err != nil {
			return err
		}
		if !blank {
			used++
		}
	}

	out := cmd.OutOrStdout()
	name := s.Path()
	if name == "" {
		name = "(new font)"
	}
	fmt.Fprintf(out, "Font:   %s\n", name)
	fmt.Fprintf(out, "Size:   %d bytes\n", msxfont.FontSize)
	fmt.Fprintf(out, "Glyphs: %d of %d drawn\n", used, msxfont.NumGlyphs)
	fmt.Fprintln(out, s.Title())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
