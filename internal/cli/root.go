// Package cli implements the command-line interface for rubik.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/config"
	"github.com/SeamusWaldron/rubik/internal/logging"
	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/internal/printer"
	"github.com/SeamusWaldron/rubik/internal/render"
)

const version = "0.1.0"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	noColor    bool
	compact    bool
}

// app carries what commands need once the root pre-run has finished.
type app struct {
	flags globalFlags

	cfg      config.Config
	log      *logrus.Entry
	print    *printer.Printer
	render   *render.Renderer
	analyzer *rubik.Analyzer
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{analyzer: rubik.NewAnalyzer()}

	rootCmd := &cobra.Command{
		Use:   "rubik",
		Short: "Rubik's Cube state explorer",
		Long: `rubik applies move sequences to a simulated 3x3x3 cube and reports on
the result: the facelet net, where each piece sits, which layers and
crosses are complete, and how far through a layer-by-layer solve the cube is.

Sequences use standard notation: U D F B R L with an optional ' or 2.`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "Env file loaded before reading RUBIK_* variables")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level (overrides config)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "Log format: text or json (overrides config)")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&a.flags.compact, "compact", false, "Print one line per face instead of a net")

	rootCmd.AddCommand(
		newShowCmd(a),
		newApplyCmd(a),
		newAnalyzeCmd(a),
		newFindCmd(a),
		newInvertCmd(a),
		newSimplifyCmd(a),
		newValidateCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup resolves configuration in order defaults, file, env, flags.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(a.flags.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.logFormat
	}
	if a.flags.noColor {
		cfg.Color = false
	}
	if a.flags.compact {
		cfg.Compact = true
	}
	a.cfg = cfg

	logger, err := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})
	a.log.WithField("config", a.flags.configPath).Debug("configuration loaded")

	a.print = printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	a.print.SetColor(cfg.Color)
	a.render = render.New(cfg.Color)

	return nil
}

// newCube returns a solved cube logging through the run logger.
func (a *app) newCube() *rubik.Cube {
	return rubik.NewCube(rubik.WithLogger(a.log.WithField("component", "cube")))
}

// cubeFrom applies sequence to a solved cube, warning about skipped tokens.
// It returns the cube and the number of moves applied.
func (a *app) cubeFrom(sequence string) (*rubik.Cube, int) {
	c := a.newCube()
	if err := c.ApplyNotation(sequence); err != nil {
		a.log.WithError(err).Debug("sequence had unknown tokens")
	}

	bad := notation.Validate(sequence)
	for _, e := range bad {
		a.print.Warning("skipped %q at position %d\n", e.Token, e.Index)
	}
	return c, len(strings.Fields(sequence)) - len(bad)
}

// drawCube renders c in the configured layout.
func (a *app) drawCube(c *rubik.Cube) string {
	if a.cfg.Compact {
		return a.render.Compact(c)
	}
	return a.render.Net(c)
}
