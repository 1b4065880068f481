// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mdwriter/markdown"
)

func newLangsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List language shorthands accepted by block --lang",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := markdown.Languages()
			if a.format != formatText {
				return a.write(cmd.OutOrStdout(), langs)
			}
			table, err := languageTable(langs)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), table)
		},
	}
}

// languageTable renders langs as a Markdown pipe table.
func languageTable(langs []markdown.Language) (string, error) {
	buf := &strings.Builder{}
	table := tablewriter.NewTable(
		buf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithRow("-").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{
						Left:   tw.On,
						Top:    tw.Off,
						Right:  tw.On,
						Bottom: tw.Off,
					},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Fail},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:   tw.WrapNone,
					AutoFormat: tw.Fail,
				},
				Alignment:  tw.CellAlignment{Global: tw.AlignNone},
			},
		}),
	)

	rows := make([][]string, 0, len(langs))
	for _, l := range langs {
		rows = append(rows, []string{l.Short, string(l.Info), markdown.CodeSpan("mdwriter block --lang " + l.Short)})
	}

	table.Header([]string{"Short", "Info string", "Usage"})
	if err := table.Bulk(rows); err != nil {
		return "", errors.Wrap(err, "add language rows")
	}
	if err := table.Render(); err != nil {
		return "", errors.Wrap(err, "render language table")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
