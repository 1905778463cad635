package sanitize

import (
	"strings"
	"testing"
)

func TestPostBodyStripsScripts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		deny  string
	}{
		{"script tag", `<p>hi</p><script>alert(1)</script>`, "<script"},
		{"event handler", `<img src="x.png" onerror="alert(1)">`, "onerror"},
		{"javascript url", `<a href="javascript:alert(1)">x</a>`, "javascript:"},
		{"iframe", `<iframe src="https://evil.example"></iframe>`, "<iframe"},
		{"style tag", `<style>body{display:none}</style><p>ok</p>`, "<style"},
		{"object", `<object data="x"></object>`, "<object"},
		{"obfuscated script", `<SCRIPT SRC="http://evil.example/x.js"></SCRIPT>`, "script"},
	}
	for _, c := range cases {
		out := PostBody(c.input)
		if strings.Contains(strings.ToLower(out), c.deny) {
			t.Fatalf("%s: %q survived sanitization: %q", c.name, c.deny, out)
		}
	}
}

func TestPostBodyKeepsFormatting(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraph", `<p class="lead">Hello</p>`, `<p class="lead">Hello</p>`},
		{"emphasis", `<strong>bold</strong> and <em>italic</em>`, `<strong>bold</strong>`},
		{"list", `<ul><li>one</li></ul>`, `<li>one</li>`},
		{"heading", `<h2>Section</h2>`, `<h2>Section</h2>`},
		{"blockquote", `<blockquote>quote</blockquote>`, `<blockquote>quote</blockquote>`},
		{"image", `<img src="https://cdn.example/pic.jpg">`, `src="https://cdn.example/pic.jpg"`},
	}
	for _, c := range cases {
		out := PostBody(c.input)
		if !strings.Contains(out, c.want) {
			t.Fatalf("%s: expected %q in output, got %q", c.name, c.want, out)
		}
	}
}

// Unknown attributes go away even on allowed tags; text content survives.
func TestPostBodyUnknownAttributes(t *testing.T) {
	out := PostBody(`<p data-tracker="id-9" class="x">text</p>`)
	if strings.Contains(out, "data-tracker") {
		t.Fatalf("unlisted attribute survived: %q", out)
	}
	if !strings.Contains(out, "text") {
		t.Fatalf("content lost: %q", out)
	}
}
