// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// displayCondition is fixed so that RUNEWIDTH_EASTASIAN and LANG, which
// runewidth reads into DefaultCondition, do not change underlines.
var displayCondition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// Width measures header text to size a setext underline.
type Width func(text string) int

var (
	// RuneCount counts code points. H1 and H2 use it.
	RuneCount Width = utf8.RuneCountInString
	// DisplayWidth counts terminal cells, so wide CJK runes count twice.
	// Ambiguous-width runes count once whatever the locale says.
	DisplayWidth Width = displayCondition.StringWidth
	// GraphemeCount counts user-perceived characters, so "e" plus a combining
	// accent counts once.
	GraphemeCount Width = uniseg.GraphemeClusterCount
)
