// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// readText joins args with spaces. Without args it reads stdin and drops
// one trailing line break.
func (a *app) readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if a.isTerminal(in) {
		return "", ErrMissingText
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// isTerminal reports whether r is an interactive terminal, where waiting for
// stdin would hang.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// write prints v in the configured format. Text mode prints v with fmt.Sprint
// and a line feed.
func (a *app) write(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	switch a.format {
	case formatJSON:
		if data, err = json.Marshal(v); err != nil {
			return errors.Wrap(err, "encode json")
		}
		data = append(data, '\n')
	case formatYAML:
		if data, err = yaml.Marshal(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
	default:
		data = []byte(fmt.Sprintln(v))
	}

	if _, err = w.Write(data); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
