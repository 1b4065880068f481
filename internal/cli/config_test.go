// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package cli

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		text    string
		want    int
		wantErr error
	}{
		{name: "runes", in: "runes", text: "日本", want: 2},
		{name: "display", in: "Display", text: "日本", want: 4},
		{name: "graphemes", in: " graphemes ", text: "e\u0301", want: 1},
		{name: "unknown", in: "bytes", wantErr: ErrUnknownWidth},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			width, err := parseWidth(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseWidth(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := width(tt.text); got != tt.want {
				t.Errorf("width(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]outputFormat{"text": formatText, "JSON": formatJSON, "yaml": formatYAML} {
		got, err := parseFormat(in)
		if err != nil || got != want {
			t.Errorf("parseFormat(%q) = (%q, %v), want (%q, nil)", in, got, err, want)
		}
	}
	if _, err := parseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("parseFormat(xml) error = %v, want %v", err, ErrUnknownFormat)
	}
}
