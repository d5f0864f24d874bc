package i18n_test

import (
	"testing"

	"github.com/PePetrov96/epicbyte/internal/i18n"
)

func TestResolve(t *testing.T) {
	if got := i18n.Resolve("book.text", "en"); got != "Book" {
		t.Fatalf("want Book, got %q", got)
	}
	if got := i18n.Resolve("book.text", "bg"); got != "Книга" {
		t.Fatalf("want Книга, got %q", got)
	}
	// unsupported locale falls back to the default
	if got := i18n.Resolve("book.text", "de"); got != "Book" {
		t.Fatalf("want fallback Book, got %q", got)
	}
	// unknown key falls back to the key itself
	if got := i18n.Resolve("nope.text", "en"); got != "nope.text" {
		t.Fatalf("want key echo, got %q", got)
	}
}

func TestSupported(t *testing.T) {
	if !i18n.Supported("en") || !i18n.Supported("bg") {
		t.Fatal("en and bg must be supported")
	}
	if i18n.Supported("de") {
		t.Fatal("de must not be supported")
	}
}
