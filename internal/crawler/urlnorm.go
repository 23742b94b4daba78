package crawler

import (
	"net/url"
	"strings"
)

// Normalizer resolves discovered hrefs against the page they came from and
// filters out URLs that must never reach the frontier.
type Normalizer struct {
	excludedExtensions []string
}

// NewNormalizer creates a Normalizer with the given exclusion suffixes
// (e.g. ".jpg", ".pdf")
func NewNormalizer(excludedExtensions []string) *Normalizer {
	return &Normalizer{excludedExtensions: excludedExtensions}
}

// Resolve turns an anchor href into an absolute URL.
// Hrefs starting with "/" resolve against the page's scheme+host; hrefs
// without a scheme indicator resolve against the current page's directory
// prefix; anything else is already absolute and passes through unchanged.
func (n *Normalizer) Resolve(baseURL, pathPrefix, href string) string {
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	if !strings.HasPrefix(href, "http") {
		return pathPrefix + href
	}
	return href
}

// SplitBase derives the resolution anchors for a page: the scheme+host base
// and the directory portion of the page URL. When the page path has no "/",
// the page URL itself serves as the prefix.
func SplitBase(pageURL string) (baseURL, pathPrefix string) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return pageURL, pageURL
	}

	baseURL = parsed.Scheme + "://" + parsed.Host

	if strings.Contains(parsed.Path, "/") {
		pathPrefix = pageURL[:strings.LastIndex(pageURL, "/")+1]
	} else {
		pathPrefix = pageURL
	}
	return baseURL, pathPrefix
}

// IsValid reports whether s is a fetchable absolute http(s) URL
func IsValid(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// IsExcluded reports whether the URL ends in one of the configured
// binary/document extensions
func (n *Normalizer) IsExcluded(rawURL string) bool {
	lowered := strings.ToLower(rawURL)
	for _, ext := range n.excludedExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}
