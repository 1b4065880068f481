// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package markdown formats Markdown fragments: code fences, code spans,
// fenced code blocks, setext and ATX headers and a few inline helpers.
//
// Every function is pure. Input text is emitted verbatim; nothing is escaped
// or validated, so keeping the resulting Markdown well formed (for example
// not passing backticks into CodeSpan) is up to the caller.
//
// Reference: https://spec.commonmark.org/0.30/
package markdown
