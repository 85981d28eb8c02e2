package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/hiext/core/config"
	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
	"github.com/msto63/hiext/pkg/markup"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile      string
	logLevel     string
	rendererName string

	settings Settings
	log      *hixlog.Logger
	renderer markup.Renderer
}

// NewRootCommand builds the hiext command tree
func NewRootCommand() *cobra.Command {
	a := &app{log: hixlog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "hiext",
		Short: "Integer and text helpers on the command line",
		Long: `hiext exposes the integer iteration and text helpers of the hiext
library as commands.

Groups:
  text  - case conversion, trimming, truncation, URL encoding, splitting,
          email checks, character counting and indexing, date parsing,
          <strong> styling and HTML stripping
  int   - times, upto and downto iteration`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&a.rendererName, "renderer", "", "markup renderer: html or policy")

	rootCmd.AddCommand(newTextCommand(a))
	rootCmd.AddCommand(newIntCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the hiext command with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the configuration and builds the logger and renderer. Flags
// take precedence over the environment, which takes precedence over the file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault(a.cfgFile)
	if err != nil {
		return err
	}

	settings, err := LoadSettings(cfg)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		level, err := hixlog.ParseLevel(a.logLevel)
		if err != nil {
			return hixerror.Wrap(err, "invalid --log-level").
				WithCode(hixerror.CodeInvalidInput).
				WithOperation("hiext.setup")
		}
		settings.LogLevel = level
	}
	if a.rendererName != "" {
		settings.Renderer = a.rendererName
	}
	a.settings = settings
	a.log = newLogger(settings, cmd.ErrOrStderr())
	hixlog.SetDefault(a.log)

	renderer, err := markup.New(settings.Renderer, markup.WithLogger(a.log.WithName("markup")))
	if err != nil {
		return err
	}
	a.renderer = renderer

	a.log.Debug("configuration loaded", hixlog.Fields{
		"config":   cfg.String(),
		"renderer": settings.Renderer,
		"command":  cmd.CommandPath(),
	})
	return nil
}

func newLogger(s Settings, w io.Writer) *hixlog.Logger {
	return hixlog.NewWithConfig(hixlog.Config{
		Level:   s.LogLevel,
		Format:  s.LogFormat,
		Output:  w,
		Name:    "hiext",
		NoColor: s.NoColor,
	})
}

func (a *app) println(cmd *cobra.Command, v ...interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), v...)
}
