// Package main provides the texsite CLI entry point.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/texsite/internal/app"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitMissingInput = 2
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, app.ErrMissingInput) {
			os.Exit(ExitMissingInput)
		}
		os.Exit(ExitError)
	}
}

type rootOptions struct {
	configPath string
	envFiles   []string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "texsite",
		Short: "Turn a LaTeX research paper into a static website",
		Long: `texsite converts a LaTeX paper into a single self-contained HTML page with
numbered citations, a references list and client-side math rendering, and
builds a small static site around it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       app.BuildVersion,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", app.DefaultConfigPath, "Path to the YAML site configuration")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "Dotenv files loaded before reading TEXSITE_* variables")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(newBuildCmd(opts), newConvertCmd(opts))
	return root
}

// baseConfig resolves configuration with the precedence
// defaults < config file < environment < flags.
func baseConfig(opts *rootOptions) app.Config {
	if err := app.LoadEnvFiles(opts.envFiles...); err != nil {
		log.Warn().Err(err).Msg("dotenv load failed")
	}
	cfg := app.Config{ConfigPath: opts.configPath}
	app.ApplyFileConfig(&cfg, app.LoadConfigFile(opts.configPath))
	app.ApplyEnvOverrides(&cfg)
	if opts.verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return cfg
}

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var srcDir, webDir, outDir, mathRenderer, themeName string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the paper website",
		Long: `Build converts the main LaTeX file of the source directory (main.tex,
paper.tex, document.tex or the first *.tex) into index.html, then copies
assets, figures and a BibTeX page into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := baseConfig(opts)
			flags := cmd.Flags()
			if flags.Changed("src") {
				cfg.SourceDir = srcDir
			}
			if flags.Changed("web") {
				cfg.WebDir = webDir
			}
			if flags.Changed("out") {
				cfg.OutputDir = outDir
			}
			if flags.Changed("math") {
				cfg.MathRenderer = mathRenderer
			}
			if flags.Changed("theme") {
				cfg.Theme = themeName
			}
			return runBuild(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&srcDir, "src", app.DefaultSourceDir, "Directory holding the LaTeX sources")
	cmd.Flags().StringVar(&webDir, "web", app.DefaultWebDir, "Directory holding optional static assets/")
	cmd.Flags().StringVar(&outDir, "out", app.DefaultOutputDir, "Output directory")
	cmd.Flags().StringVar(&mathRenderer, "math", "", "Math renderer: katex or mathjax")
	cmd.Flags().StringVar(&themeName, "theme", "", "Theme: modern, academic or minimal")
	return cmd
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.tex> [output_dir]",
		Short: "Convert one LaTeX file to index.html",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := baseConfig(opts)
			outDir := app.DefaultOutputDir
			if len(args) > 1 {
				outDir = args[1]
			}
			return runConvert(args[0], outDir, cfg)
		},
	}
}

func runBuild(ctx context.Context, cfg app.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(ctx)
}

func runConvert(input, outDir string, cfg app.Config) error {
	out, err := app.ConvertFile(input, outDir, cfg.Settings())
	if err != nil {
		return err
	}
	log.Info().Str("input", input).Str("output", out.Path).Int("citations", len(out.Citations)).Msg("converted")
	return nil
}
