package crawler

import "testing"

func TestExtractEmails(t *testing.T) {
	text := `Contact us at info@a.test or sales+eu@a-shop.test.
	Support: first.last_name@sub.b.test`

	emails := ExtractEmails(text)
	want := []string{"info@a.test", "sales+eu@a-shop.test", "first.last_name@sub.b.test"}

	if len(emails) != len(want) {
		t.Fatalf("expected %d emails, got %d: %v", len(want), len(emails), emails)
	}
	for _, w := range want {
		if _, ok := emails[w]; !ok {
			t.Fatalf("missing %s in %v", w, emails)
		}
	}
}

func TestExtractEmailsCaseInsensitive(t *testing.T) {
	emails := ExtractEmails("write to Admin@A.Test today")
	if _, ok := emails["Admin@A.Test"]; !ok {
		t.Fatalf("mixed-case address not matched: %v", emails)
	}
}

func TestExtractEmailsDedup(t *testing.T) {
	emails := ExtractEmails("info@a.test info@a.test info@a.test")
	if len(emails) != 1 {
		t.Fatalf("expected 1 distinct email, got %d", len(emails))
	}
}

func TestExtractEmailsNoMatch(t *testing.T) {
	emails := ExtractEmails("no addresses here, not even at signs used properly")
	if len(emails) != 0 {
		t.Fatalf("expected empty set, got %v", emails)
	}
}
