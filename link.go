package mdsearch

import (
	"net"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// LinkSet is a set of normalized absolute URLs.
// Iteration order is unspecified; use Sorted for stable display.
type LinkSet map[string]struct{}

// Add inserts link into the set.
func (s LinkSet) Add(link string) {
	s[link] = struct{}{}
}

// Contains reports whether link is in the set.
func (s LinkSet) Contains(link string) bool {
	_, ok := s[link]
	return ok
}

// Len returns the number of links in the set.
func (s LinkSet) Len() int {
	return len(s)
}

// Sorted returns the links in lexical order.
func (s LinkSet) Sorted() []string {
	links := make([]string, 0, len(s))
	for link := range s {
		links = append(links, link)
	}
	slices.Sort(links)
	return links
}

// DefaultLinkDenylist returns the social and sponsor destinations that are
// dropped from link listings.
func DefaultLinkDenylist() []string {
	return []string{"discord.gg", "twitter.com", "t.me", "github.com/sponsors"}
}

var (
	linkRe            = regexp.MustCompile("https?://[^\\s)\\]\"<>`]+")
	trailingPunctRe   = regexp.MustCompile(`[)\]."]+$`)
	markdownRemnantRe = regexp.MustCompile(`\]\(.+?\)`)
	linkSchemeRe      = regexp.MustCompile(`^https?://`)
)

// LinkNormalizer extracts clean, deduplicated links from document content.
type LinkNormalizer struct {
	// Entries are a host ("t.me") or a host and path prefix
	// ("github.com/sponsors"). A host entry also covers its subdomains.
	Denylist []string
}

// NewLinkNormalizer returns a normalizer that drops links matching denylist.
func NewLinkNormalizer(denylist []string) *LinkNormalizer {
	return &LinkNormalizer{Denylist: denylist}
}

// NormalizeLinks extracts links from content using the default denylist.
func NormalizeLinks(content string) LinkSet {
	return NewLinkNormalizer(DefaultLinkDenylist()).Normalize(content)
}

// Normalize extracts every http(s) link from content, strips trailing
// punctuation and markdown remnants, and drops denylisted links and links
// left with parentheses.
func (n *LinkNormalizer) Normalize(content string) LinkSet {
	links := make(LinkSet)
	for _, raw := range linkRe.FindAllString(content, -1) {
		link := trailingPunctRe.ReplaceAllString(raw, "")
		if strings.Contains(link, "](") {
			link = markdownRemnantRe.ReplaceAllString(link, "")
		}
		if n.Allowed(link) {
			links.Add(link)
		}
	}
	return links
}

// Allowed reports whether link is an http(s) link without parentheses that
// does not match the denylist.
func (n *LinkNormalizer) Allowed(link string) bool {
	if !linkSchemeRe.MatchString(link) {
		return false
	}
	if strings.ContainsAny(link, "()") {
		return false
	}

	host, path := splitLink(link)
	for _, entry := range n.Denylist {
		if denied(host, path, entry) {
			return false
		}
	}
	return true
}

// splitLink returns the lowercased host and the path of an http(s) link.
// Links that do not parse as URLs (a stray "%" in the path, say) are split
// on the first "/", "?" or "#" after the scheme.
func splitLink(link string) (host, path string) {
	if u, err := url.Parse(link); err == nil {
		return strings.ToLower(u.Hostname()), u.Path
	}

	rest := linkSchemeRe.ReplaceAllString(link, "")
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host, path = rest[:i], rest[i:]
	} else {
		host = rest
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host), path
}

func denied(host, path, entry string) bool {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if entry == "" {
		return false
	}

	entryHost, entryPath, _ := strings.Cut(entry, "/")
	if host != entryHost && !strings.HasSuffix(host, "."+entryHost) {
		return false
	}
	if entryPath == "" {
		return true
	}

	prefix := "/" + strings.TrimSuffix(entryPath, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
