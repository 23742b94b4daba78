package crawler

import "testing"

func TestExtractLinks(t *testing.T) {
	body := `<html><body>
	<a href="/first">one</a>
	<p><a href="second.html">two</a></p>
	<a href="https://b.test/third">three</a>
	</body></html>`

	links, err := ExtractLinks(body)
	if err != nil {
		t.Fatalf("ExtractLinks error: %v", err)
	}

	want := []string{"/first", "second.html", "https://b.test/third"}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d: %v", len(want), len(links), links)
	}
	for i, w := range want {
		if links[i] != w {
			t.Fatalf("link %d: expected %s, got %s (document order must be preserved)", i, w, links[i])
		}
	}
}

func TestExtractLinksMissingHref(t *testing.T) {
	links, err := ExtractLinks(`<a name="anchor">no target</a><a href="/ok">ok</a>`)
	if err != nil {
		t.Fatalf("ExtractLinks error: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(links))
	}
	if links[0] != "" {
		t.Fatalf("missing href must yield empty string, got %q", links[0])
	}
	if links[1] != "/ok" {
		t.Fatalf("unexpected second link: %q", links[1])
	}
}

func TestExtractLinksEmptyBody(t *testing.T) {
	links, err := ExtractLinks("")
	if err != nil {
		t.Fatalf("ExtractLinks error: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("expected no links, got %v", links)
	}
}
