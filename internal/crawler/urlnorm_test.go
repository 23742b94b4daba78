package crawler

import "testing"

func TestResolveAbsolutePath(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Resolve("http://a.test", "http://a.test/docs/", "/contact")
	if got != "http://a.test/contact" {
		t.Fatalf("unexpected resolution: %s", got)
	}
}

func TestResolveRelative(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Resolve("http://a.test", "http://a.test/docs/", "about.html")
	if got != "http://a.test/docs/about.html" {
		t.Fatalf("unexpected resolution: %s", got)
	}
}

func TestResolveAbsoluteURL(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Resolve("http://a.test", "http://a.test/docs/", "https://b.test/page")
	if got != "https://b.test/page" {
		t.Fatalf("absolute URL must pass through unchanged, got %s", got)
	}
}

func TestSplitBase(t *testing.T) {
	base, prefix := SplitBase("http://a.test/docs/page.html")
	if base != "http://a.test" {
		t.Fatalf("unexpected base: %s", base)
	}
	if prefix != "http://a.test/docs/" {
		t.Fatalf("unexpected prefix: %s", prefix)
	}
}

func TestSplitBaseNoPath(t *testing.T) {
	// A page URL whose path has no "/" serves as its own prefix
	base, prefix := SplitBase("http://a.test")
	if base != "http://a.test" {
		t.Fatalf("unexpected base: %s", base)
	}
	if prefix != "http://a.test" {
		t.Fatalf("unexpected prefix: %s", prefix)
	}
}

func TestSplitBaseRootPath(t *testing.T) {
	base, prefix := SplitBase("http://a.test/")
	if base != "http://a.test" {
		t.Fatalf("unexpected base: %s", base)
	}
	if prefix != "http://a.test/" {
		t.Fatalf("unexpected prefix: %s", prefix)
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"http://a.test", "https://a.test/page", "http://a.test:8080/x"}
	for _, u := range valid {
		if !IsValid(u) {
			t.Fatalf("expected %s to be valid", u)
		}
	}

	invalid := []string{"ftp://a.test", "a.test", "http://", "mailto:x@a.test", ""}
	for _, u := range invalid {
		if IsValid(u) {
			t.Fatalf("expected %s to be invalid", u)
		}
	}
}

func TestIsExcluded(t *testing.T) {
	n := NewNormalizer([]string{".jpg", ".jpeg", ".pdf", ".png"})

	excluded := []string{
		"http://a.test/photo.jpg",
		"http://a.test/photo.JPEG",
		"http://a.test/report.pdf",
		"http://a.test/logo.PNG",
	}
	for _, u := range excluded {
		if !n.IsExcluded(u) {
			t.Fatalf("expected %s to be excluded", u)
		}
	}

	if n.IsExcluded("http://a.test/page.html") {
		t.Fatal("page.html must not be excluded")
	}
	// Suffix match only, not substring
	if n.IsExcluded("http://a.test/photo.jpg/comments") {
		t.Fatal("exclusion must only match the trailing segment")
	}
}
