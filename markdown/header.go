// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "strings"

type HeaderLevel int

const (
	HeaderLevelH1 HeaderLevel = 1
	HeaderLevelH2 HeaderLevel = 2
	HeaderLevelH3 HeaderLevel = 3
	HeaderLevelH4 HeaderLevel = 4
	HeaderLevelH5 HeaderLevel = 5
	HeaderLevelH6 HeaderLevel = 6
)

const (
	SetextH1Marker = '='
	SetextH2Marker = '-'
)

// H1 underlines text with one "=" per code point.
//
// https://spec.commonmark.org/0.30/#setext-headings
func H1(text string) string {
	return SetextHeader(text, SetextH1Marker, RuneCount)
}

// H2 underlines text with one "-" per code point.
func H2(text string) string {
	return SetextHeader(text, SetextH2Marker, RuneCount)
}

func H1Width(text string, width Width) string {
	return SetextHeader(text, SetextH1Marker, width)
}

func H2Width(text string, width Width) string {
	return SetextHeader(text, SetextH2Marker, width)
}

// SetextHeader returns text, a line feed and marker repeated width(text)
// times. A nil width falls back to RuneCount.
func SetextHeader(text string, marker byte, width Width) string {
	if width == nil {
		width = RuneCount
	}
	n := max(width(text), 0)

	var b strings.Builder
	b.Grow(len(text) + len(LF) + n)
	b.WriteString(text)
	b.WriteString(LF)
	for i := 0; i < n; i++ {
		b.WriteByte(marker)
	}
	return b.String()
}

// https://spec.commonmark.org/0.30/#atx-headings
func H3(text string) string {
	return ATXHeader(HeaderLevelH3, text)
}

func H4(text string) string {
	return ATXHeader(HeaderLevelH4, text)
}

func H5(text string) string {
	return ATXHeader(HeaderLevelH5, text)
}

func H6(text string) string {
	return ATXHeader(HeaderLevelH6, text)
}

// ATXHeader prefixes text with level "#" characters and a space. Levels
// outside 1..6 are clamped.
func ATXHeader(level HeaderLevel, text string) string {
	level = min(max(level, HeaderLevelH1), HeaderLevelH6)

	var b strings.Builder
	b.Grow(int(level) + 1 + len(text))
	for i := 0; i < int(level); i++ {
		b.WriteByte('#')
	}
	b.WriteByte(' ')
	b.WriteString(text)
	return b.String()
}
