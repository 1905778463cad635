package share

import (
	"strings"
	"testing"
)

func TestLinks(t *testing.T) {
	links := Links("https://example.org/post/42", "Broadband & Beyond")

	if len(links) != 4 {
		t.Fatalf("expected 4 share targets, got %d", len(links))
	}
	names := map[string]bool{}
	for _, l := range links {
		names[l.Name] = true
		if strings.Contains(l.URL, " ") {
			t.Fatalf("%s URL not escaped: %q", l.Name, l.URL)
		}
		if strings.Contains(l.URL, "&url=") || strings.Contains(l.URL, "Beyond&") {
			t.Fatalf("%s URL contains raw ampersand from title: %q", l.Name, l.URL)
		}
	}
	for _, want := range []string{"Facebook", "Twitter", "LinkedIn", "WhatsApp"} {
		if !names[want] {
			t.Fatalf("missing share target %s", want)
		}
	}
}

func TestLinksEscapesPostURL(t *testing.T) {
	links := Links("https://example.org/post/42?lang=np", "title")
	for _, l := range links {
		if strings.Contains(l.URL, "?lang=np") {
			t.Fatalf("%s: post URL query not escaped: %q", l.Name, l.URL)
		}
	}
}
