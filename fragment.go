package mdsearch

import (
	"regexp"
	"strings"
)

// FragmentKind identifies the kind of extracted fragment.
type FragmentKind int

// FragmentKind constants.
const (
	FragmentParagraph FragmentKind = iota + 1
	FragmentCode
)

// String returns the lowercase name of the kind.
func (k FragmentKind) String() string {
	switch k {
	case FragmentParagraph:
		return "paragraph"
	case FragmentCode:
		return "code"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) within a fragment's text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Fragment is a piece of a document extracted around a keyword.
type Fragment struct {
	Kind FragmentKind `json:"kind"`
	Text string       `json:"text"`

	// Language hint from the opening fence of a code fragment.
	Language string `json:"language,omitempty"`

	// Keyword occurrences within Text. The text itself is never modified.
	Highlights []Span `json:"highlights,omitempty"`
}

const fenceMarker = "```"

// ExtractFragments returns, in document order, the paragraphs of content
// that contain keyword and the fenced code blocks that follow them.
//
// A line containing keyword (case-insensitive) starts a paragraph, which
// runs until the next blank line outside a code block. Fence lines toggle
// code-block state independently of paragraph capture; a code block is
// emitted when it closes, provided keyword has appeared by then. A trailing
// paragraph is emitted at end of input.
//
// Keyword is matched as given, surrounding spaces included.
// Returns EINVALID if keyword is blank. Returns no fragments if keyword
// does not occur in content.
func ExtractFragments(content, keyword string) ([]Fragment, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, Errorf(EINVALID, "keyword required")
	}
	if strings.ContainsAny(keyword, "\r\n") {
		return nil, Errorf(EINVALID, "keyword must be a single line")
	}
	keywordRe := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))

	var (
		fragments  []Fragment
		paragraph  []string
		code       []string
		capturing  bool
		inCode     bool
		keywordHit bool
	)

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		text := strings.Join(paragraph, "\n")
		fragments = append(fragments, Fragment{
			Kind:       FragmentParagraph,
			Text:       text,
			Highlights: findSpans(keywordRe, text),
		})
		paragraph = nil
	}

	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)

		if keywordRe.MatchString(line) {
			capturing = true
			keywordHit = true
		}

		if capturing {
			if trimmed == "" && !inCode {
				flush()
				capturing = false
			} else {
				paragraph = append(paragraph, line)
			}
		}

		if strings.HasPrefix(trimmed, fenceMarker) {
			if !inCode {
				inCode = true
				code = []string{line}
			} else {
				inCode = false
				code = append(code, line)
				if keywordHit {
					fragments = append(fragments, Fragment{
						Kind:     FragmentCode,
						Text:     strings.Join(code, "\n"),
						Language: fenceLanguage(code[0]),
					})
				}
				code = nil
			}
		} else if inCode {
			code = append(code, line)
		}
	}
	flush()

	return fragments, nil
}

var codeBlockRe = regexp.MustCompile("(?s)```(.*?)```")

// ExtractCodeBlocks returns every fenced code block in content as a code
// fragment. Fences are removed from the text and surrounding whitespace
// is trimmed.
func ExtractCodeBlocks(content string) []Fragment {
	matches := codeBlockRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]Fragment, 0, len(matches))
	for _, m := range matches {
		inner := m[1]
		var lang string
		if idx := strings.IndexByte(inner, '\n'); idx >= 0 {
			lang = strings.TrimSpace(inner[:idx])
			inner = inner[idx+1:]
		}
		blocks = append(blocks, Fragment{
			Kind:     FragmentCode,
			Text:     strings.TrimSpace(inner),
			Language: lang,
		})
	}
	return blocks
}

// StripCodeBlocks removes fenced code blocks from content.
func StripCodeBlocks(content string) string {
	return codeBlockRe.ReplaceAllString(content, "")
}

// fenceLanguage returns the language hint following an opening fence.
func fenceLanguage(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "`"))
}

func findSpans(re *regexp.Regexp, text string) []Span {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// splitLines splits content into lines without terminators.
// A final newline does not produce a trailing empty line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ApplyHighlights returns text with every span passed through mark.
// Spans must be sorted and must not overlap.
func ApplyHighlights(text string, spans []Span, mark func(string) string) string {
	if len(spans) == 0 || mark == nil {
		return text
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Start < prev || s.End > len(text) || s.Start > s.End {
			continue
		}
		b.WriteString(text[prev:s.Start])
		b.WriteString(mark(text[s.Start:s.End]))
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}
