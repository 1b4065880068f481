// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import "github.com/pkg/errors"

var (
	// ErrUnknownWidth is returned when the width setting names no known convention.
	ErrUnknownWidth = errors.New("unknown width (want runes, display or graphemes)")
	// ErrUnknownFormat is returned when the format setting is not text, json or yaml.
	ErrUnknownFormat = errors.New("unknown format (want text, json or yaml)")
	// ErrUnknownLanguage is returned when --lang names no known language.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrMissingText is returned when no text is given and stdin is a terminal.
	ErrMissingText = errors.New("no text given (pass it as arguments or on stdin)")
)
