package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/htmlsanitize"
)

func TestSanitize_PlainTextUnchanged(t *testing.T) {
	if got := htmlsanitize.Sanitize("Great club!"); got != "Great club!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	got := htmlsanitize.Sanitize(`<img src="x" onerror="alert('xss')">`)
	if strings.Contains(got, "onerror") {
		t.Error("expected onerror attribute to be removed")
	}
}

func TestSanitize_KeepsFormatting(t *testing.T) {
	input := "<p><strong>Golden hour</strong> shoot on <em>Sunday</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected formatting preserved, got %q", got)
	}
}

func TestPlain_StripsAllMarkup(t *testing.T) {
	got := htmlsanitize.Plain("<p><b>Nikon</b> D750, 50mm prime</p>")
	if got != "Nikon D750, 50mm prime" {
		t.Errorf("expected markup stripped, got %q", got)
	}
}

func TestPlain_TrimsWhitespace(t *testing.T) {
	if got := htmlsanitize.Plain("  hello  "); got != "hello" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestPlain_Empty(t *testing.T) {
	if got := htmlsanitize.Plain(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
