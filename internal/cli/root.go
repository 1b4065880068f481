// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mdwriter/markdown"
)

// app holds the settings resolved for one invocation.
type app struct {
	log        zerolog.Logger
	width      markdown.Width
	format     outputFormat
	isTerminal func(io.Reader) bool
}

func newApp() *app {
	return &app{
		log:        newLogger(os.Stderr, false),
		width:      markdown.RuneCount,
		format:     formatText,
		isTerminal: isTerminal,
	}
}

// Execute runs the mdwriter command line on the process arguments and
// returns the exit status.
func Execute() int {
	return execute(NewRootCmd(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// execute logs a failure once to stderr and maps it to exit status 1.
func execute(cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		log := newLogger(stderr, false)
		log.Error().Err(err).Msg("mdwriter failed")
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "mdwriter",
		Short:         "Print Markdown fragments: headers, code spans and fenced code blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			flags := cmd.Flags()
			for _, key := range []string{keyWidth, keyFormat, keyVerbose} {
				if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
					return err
				}
			}
			if err := loadConfig(v); err != nil {
				return err
			}
			return a.configure(cmd, v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	flags.String(keyWidth, defaults[keyWidth].(string), "setext underline width: runes, display or graphemes")
	flags.String(keyFormat, defaults[keyFormat].(string), "output format: text, json or yaml")
	flags.BoolP(keyVerbose, "v", false, "log debug details to stderr")

	cmd.AddCommand(newFenceCmd(a))
	cmd.AddCommand(newSpanCmd(a))
	cmd.AddCommand(newBlockCmd(a))
	for _, h := range headerCommands {
		cmd.AddCommand(newHeaderCmd(a, h))
	}
	cmd.AddCommand(newLangsCmd(a))

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func (a *app) configure(cmd *cobra.Command, v *viper.Viper) (err error) {
	a.log = newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))
	if a.width, err = parseWidth(v.GetString(keyWidth)); err != nil {
		return err
	}
	if a.format, err = parseFormat(v.GetString(keyFormat)); err != nil {
		return err
	}
	a.log.Debug().
		Str("command", cmd.Name()).
		Str("config", v.ConfigFileUsed()).
		Str(keyWidth, v.GetString(keyWidth)).
		Str(keyFormat, string(a.format)).
		Msg("configuration loaded")
	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
