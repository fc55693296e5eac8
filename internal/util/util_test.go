// internal/util/util_test.go
package util

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("short input must pass through, got %q", got)
	}

	got := TruncateRunes("abcdefghij", 5)
	if got != "abcd…" {
		t.Fatalf("TruncateRunes = %q, want %q", got, "abcd…")
	}
	if utf8.RuneCountInString(got) != 5 {
		t.Fatalf("truncated result must not exceed the limit: %d runes", utf8.RuneCountInString(got))
	}

	if got := TruncateRunes("anything", 0); got != "" {
		t.Fatalf("zero limit should yield empty string, got %q", got)
	}
}

func TestTruncateRunesMultibyte(t *testing.T) {
	got := TruncateRunes("日本語のテキスト", 4)
	if utf8.RuneCountInString(got) != 4 {
		t.Fatalf("multibyte truncation wrong length: %q", got)
	}
}

func TestFlattenLines(t *testing.T) {
	got := FlattenLines("error: something\nbroke badly\r\n  here")
	if got != "error: something broke badly here" {
		t.Fatalf("FlattenLines = %q", got)
	}
	if got := FlattenLines(""); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"backend feature":  "Backend Feature",
		"documentation":    "Documentation",
		"ui  and  cleanup": "Ui And Cleanup",
		"":                 "",
	}
	for input, expected := range cases {
		if got := TitleCase(input); got != expected {
			t.Fatalf("TitleCase(%q) = %q, want %q", input, got, expected)
		}
	}
}
