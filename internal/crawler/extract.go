package crawler

import "regexp"

// emailPattern matches local-part@domain.tld with letters, digits and
// ". - + _" in the local part and domain segments. Malformed strings that
// happen to match are accepted as a known limitation.
var emailPattern = regexp.MustCompile(`(?i)[a-z0-9.\-+_]+@[a-z0-9.\-+_]+\.[a-z]+`)

// ExtractEmails scans text for email addresses and returns the set of
// distinct matches. Pure function, no side effects.
func ExtractEmails(text string) map[string]struct{} {
	matches := emailPattern.FindAllString(text, -1)

	emails := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		emails[m] = struct{}{}
	}
	return emails
}
