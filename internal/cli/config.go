// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"mdwriter/markdown"
)

const (
	keyWidth   = "width"
	keyFormat  = "format"
	keyVerbose = "verbose"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var defaults = map[string]any{
	keyWidth:   "runes",
	keyFormat:  string(formatText),
	keyVerbose: false,
}

var widths = map[string]markdown.Width{
	"runes":     markdown.RuneCount,
	"display":   markdown.DisplayWidth,
	"graphemes": markdown.GraphemeCount,
}

// loadConfig resolves settings with precedence defaults < file < env < flags.
// Flags are bound by the caller before the values are read.
func loadConfig(v *viper.Viper) error {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("mdwriter")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdwriter"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdwriter"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	v.SetEnvPrefix("mdwriter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return nil
}

func parseWidth(name string) (markdown.Width, error) {
	width, ok := widths[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownWidth, "%q", name)
	}
	return width, nil
}

func parseFormat(name string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}
