// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mdwriter/markdown"
)

// fixedBlocks are the fenced code block helpers with a built-in info string.
var fixedBlocks = map[markdown.InfoString]func(string) string{
	markdown.InfoJavaScript: markdown.FencedJSCodeBlock,
	markdown.InfoRust:       markdown.FencedRSCodeBlock,
	markdown.InfoShell:      markdown.FencedSHCodeBlock,
	markdown.InfoTypeScript: markdown.FencedTSCodeBlock,
}

type headerCommand struct {
	name   string
	level  markdown.HeaderLevel
	setext func(text string, width markdown.Width) string
	atx    func(text string) string
}

var headerCommands = []headerCommand{
	{name: "h1", level: markdown.HeaderLevelH1, setext: markdown.H1Width},
	{name: "h2", level: markdown.HeaderLevelH2, setext: markdown.H2Width},
	{name: "h3", level: markdown.HeaderLevelH3, atx: markdown.H3},
	{name: "h4", level: markdown.HeaderLevelH4, atx: markdown.H4},
	{name: "h5", level: markdown.HeaderLevelH5, atx: markdown.H5},
	{name: "h6", level: markdown.HeaderLevelH6, atx: markdown.H6},
}

func (a *app) emit(cmd *cobra.Command, fragment string) error {
	a.log.Debug().
		Str("command", cmd.Name()).
		Int("bytes", len(fragment)).
		Msg("fragment rendered")
	return a.write(cmd.OutOrStdout(), fragment)
}

func newFenceCmd(a *app) *cobra.Command {
	var info string
	cmd := &cobra.Command{
		Use:   "fence",
		Short: "Print a code fence with an optional info string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, markdown.CodeFence(markdown.InfoString(info)))
		},
	}
	cmd.Flags().StringVar(&info, "info", "", "info string placed right after the backticks")
	return cmd
}

func newSpanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "span [text...]",
		Short: "Wrap text in a code span",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(cmd, args)
			if err != nil {
				return err
			}
			return a.emit(cmd, markdown.CodeSpan(text))
		},
	}
}

func newBlockCmd(a *app) *cobra.Command {
	var info, lang string
	cmd := &cobra.Command{
		Use:   "block [code...]",
		Short: "Wrap code in a fenced code block",
		Example: "  mdwriter block --lang rs 'fn main() {}'\n" +
			"  cat main.go | mdwriter block --info go",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.readText(cmd, args)
			if err != nil {
				return err
			}
			if lang == "" {
				return a.emit(cmd, markdown.FencedCodeBlock(code, markdown.InfoString(info)))
			}

			resolved, ok := markdown.LookupLanguage(lang)
			if !ok {
				return errors.Wrapf(ErrUnknownLanguage, "%q", lang)
			}
			a.log.Debug().Str("lang", lang).Str("info", string(resolved)).Msg("language resolved")
			if fn, ok := fixedBlocks[resolved]; ok {
				return a.emit(cmd, fn(code))
			}
			return a.emit(cmd, markdown.FencedCodeBlock(code, resolved))
		},
	}
	cmd.Flags().StringVar(&info, "info", "", "info string for the opening fence, used verbatim")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language shorthand (js, rs, sh, ts, ...) or name")
	cmd.MarkFlagsMutuallyExclusive("info", "lang")
	return cmd
}

func newHeaderCmd(a *app, h headerCommand) *cobra.Command {
	short := "Print an ATX header"
	if h.setext != nil {
		short = "Print a setext header"
	}
	return &cobra.Command{
		Use:   h.name + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(cmd, args)
			if err != nil {
				return err
			}
			a.log.Debug().Int("level", int(h.level)).Msg("header")
			if h.setext != nil {
				return a.emit(cmd, h.setext(text, a.width))
			}
			return a.emit(cmd, h.atx(text))
		},
	}
}
