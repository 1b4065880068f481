// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSetextHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		text string
		want string
	}{
		{name: "h1", fn: H1, text: "Hello!", want: "Hello!\n======"},
		{name: "h1 short", fn: H1, text: "Hi", want: "Hi\n=="},
		{name: "h1 empty", fn: H1, text: "", want: "\n"},
		{name: "h1 multi-byte counts runes", fn: H1, text: "héllo", want: "héllo\n====="},
		{name: "h1 wide runes count once", fn: H1, text: "日本", want: "日本\n=="},
		{name: "h2", fn: H2, text: "Hello!", want: "Hello!\n------"},
		{name: "h2 empty", fn: H2, text: "", want: "\n"},
		{name: "h2 multi-byte counts runes", fn: H2, text: "naïve", want: "naïve\n-----"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fn(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetextUnderlineMatchesText(t *testing.T) {
	t.Parallel()

	texts := []string{"", "a", "Hello world!", "Grüße", "😀 emoji", "tab\there", strings.Repeat("x", 257)}
	for _, text := range texts {
		for marker, fn := range map[string]func(string) string{"=": H1, "-": H2} {
			got := fn(text)
			lines := strings.Split(got, LF)
			if len(lines) != 2 {
				t.Fatalf("%q: got %d lines, want 2", got, len(lines))
			}
			if lines[0] != text {
				t.Errorf("%q: first line = %q, want %q", got, lines[0], text)
			}
			if n := utf8.RuneCountInString(lines[1]); n != utf8.RuneCountInString(text) {
				t.Errorf("%q: underline has %d characters, want %d", got, n, utf8.RuneCountInString(text))
			}
			if strings.Trim(lines[1], marker) != "" {
				t.Errorf("%q: underline %q has characters other than %q", got, lines[1], marker)
			}
		}
	}
}

func TestSetextHeaderWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width Width
		want  string
	}{
		{name: "runes", text: "日本", width: RuneCount, want: "日本\n=="},
		{name: "display cells", text: "日本", width: DisplayWidth, want: "日本\n===="},
		{name: "display ascii", text: "Hi", width: DisplayWidth, want: "Hi\n=="},
		{name: "combining accent as one grapheme", text: "e\u0301", width: GraphemeCount, want: "e\u0301\n="},
		{name: "combining accent as two runes", text: "e\u0301", width: RuneCount, want: "e\u0301\n=="},
		{name: "nil width counts runes", text: "héllo", width: nil, want: "héllo\n====="},
		{name: "negative width", text: "x", width: func(string) int { return -3 }, want: "x\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := H1Width(tt.text, tt.width); got != tt.want {
				t.Errorf("H1Width() = %q, want %q", got, tt.want)
			}
		})
	}

	if got, want := H2Width("日本", DisplayWidth), "日本\n----"; got != want {
		t.Errorf("H2Width() = %q, want %q", got, want)
	}
}

func TestATXHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		text string
		want string
	}{
		{name: "h3", fn: H3, text: "Hello!", want: "### Hello!"},
		{name: "h3 short", fn: H3, text: "Hi", want: "### Hi"},
		{name: "h4", fn: H4, text: "Hello!", want: "#### Hello!"},
		{name: "h5", fn: H5, text: "Hello!", want: "##### Hello!"},
		{name: "h6", fn: H6, text: "Hello!", want: "###### Hello!"},
		{name: "h3 empty", fn: H3, text: "", want: "### "},
		{name: "h6 keeps newline", fn: H6, text: "a\nb", want: "###### a\nb"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fn(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestATXHeaderLevels(t *testing.T) {
	t.Parallel()

	for level := HeaderLevelH1; level <= HeaderLevelH6; level++ {
		want := strings.Repeat("#", int(level)) + " " + "Title"
		if got := ATXHeader(level, "Title"); got != want {
			t.Errorf("ATXHeader(%d) = %q, want %q", level, got, want)
		}
	}
	if got, want := ATXHeader(0, "x"), "# x"; got != want {
		t.Errorf("ATXHeader(0) = %q, want %q", got, want)
	}
	if got, want := ATXHeader(9, "x"), "###### x"; got != want {
		t.Errorf("ATXHeader(9) = %q, want %q", got, want)
	}
}

func TestHeadersAreNotIdempotent(t *testing.T) {
	t.Parallel()

	if got, want := H3(H3("Hi")), "### ### Hi"; got != want {
		t.Errorf("H3(H3()) = %q, want %q", got, want)
	}
	if got, want := H1(H1("Hi")), "Hi\n==\n====="; got != want {
		t.Errorf("H1(H1()) = %q, want %q", got, want)
	}
	if got, want := CodeSpan(CodeSpan("x")), "``x``"; got != want {
		t.Errorf("CodeSpan(CodeSpan()) = %q, want %q", got, want)
	}
}
