// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "strings"

// LF is the line feed every multi-line fragment is joined with.
const LF = "\n"

const (
	backtick = "`"
	fence    = "```"
)

// CodeFence returns a code fence followed directly by info.
//
//	CodeFence(InfoRust) // "```rust"
//	CodeFence(InfoNone) // "```"
//
// https://spec.commonmark.org/0.30/#code-fence
func CodeFence(info InfoString) string {
	return fence + string(info)
}

// CodeSpan wraps code in single backticks. Backticks inside code are not escaped.
//
// https://spec.commonmark.org/0.30/#code-span
func CodeSpan(code string) string {
	return wrap(code, backtick)
}

// FencedCodeBlock puts code between an opening fence carrying info and a bare
// closing fence. The body is inserted as is.
//
// https://spec.commonmark.org/0.30/#fenced-code-blocks
func FencedCodeBlock(code string, info InfoString) string {
	var b strings.Builder
	b.Grow(2*len(fence) + len(info) + 2*len(LF) + len(code))
	b.WriteString(fence)
	b.WriteString(string(info))
	b.WriteString(LF)
	b.WriteString(code)
	b.WriteString(LF)
	b.WriteString(fence)
	return b.String()
}

func FencedJSCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoJavaScript)
}

func FencedRSCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoRust)
}

func FencedSHCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoShell)
}

func FencedTSCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoTypeScript)
}
