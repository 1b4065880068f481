// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "strings"

func Link(text, url string) string {
	return link("", text, url)
}

func Image(text, url string) string {
	return link("!", text, url)
}

func Strikethrough(text string) string {
	return wrap(text, "~~")
}

func Highlight(text string) string {
	return wrap(text, "==")
}

func Bold(text string) string {
	return wrap(text, "**")
}

func Italic(text string) string {
	return wrap(text, "*")
}

func BoldItalic(text string) string {
	return wrap(text, "***")
}

// wrap puts marker on both sides of text.
func wrap(text, marker string) string {
	var b strings.Builder
	b.Grow(2*len(marker) + len(text))
	b.WriteString(marker)
	b.WriteString(text)
	b.WriteString(marker)
	return b.String()
}

func link(prefix, text, url string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(text) + len(url) + 4)
	b.WriteString(prefix)
	b.WriteByte('[')
	b.WriteString(text)
	b.WriteString("](")
	b.WriteString(url)
	b.WriteByte(')')
	return b.String()
}
