package mdsearch

import "strings"

// FormatFragments formats extracted fragments for display.
// Paragraph highlights are passed through mark; a nil mark leaves them as is.
// Code fragments are preceded by a "Code Block:" label.
// Fragments are separated by blank lines.
func FormatFragments(fragments []Fragment, mark func(string) string) string {
	if len(fragments) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		switch f.Kind {
		case FragmentCode:
			label := "Code Block:"
			if f.Language != "" {
				label = "Code Block (" + f.Language + "):"
			}
			parts = append(parts, label+"\n"+f.Text)
		default:
			parts = append(parts, ApplyHighlights(f.Text, f.Highlights, mark))
		}
	}

	return strings.Join(parts, "\n\n")
}
