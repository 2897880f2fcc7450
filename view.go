package mdsearch

// View is a document opened from a result list for display.
type View struct {
	Match    Match
	Document *Document

	// Changed is set when the document content differs from the content
	// that was matched.
	Changed bool
}

// Fragments returns the paragraphs and code blocks around keyword.
func (v *View) Fragments(keyword string) ([]Fragment, error) {
	return ExtractFragments(v.Document.Content, keyword)
}

// Links returns the normalized links of the document.
// A nil normalizer uses the default denylist.
func (v *View) Links(n *LinkNormalizer) LinkSet {
	if n == nil {
		return NormalizeLinks(v.Document.Content)
	}
	return n.Normalize(v.Document.Content)
}

// CodeBlocks returns every fenced code block of the document.
func (v *View) CodeBlocks() []Fragment {
	return ExtractCodeBlocks(v.Document.Content)
}

// Text returns the document content without fenced code blocks.
func (v *View) Text() string {
	return StripCodeBlocks(v.Document.Content)
}
