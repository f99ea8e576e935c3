// Package ssml turns plain article text into speech markup: a <speak>
// document of <p> paragraphs holding <s> sentences, in reading order.
//
// Sentence detection is a heuristic. Whitespace following '.' or '?' ends a
// sentence unless the text before it looks like a dotted abbreviation
// ("U.S.") or a capitalized two-letter title ("Mr.", "Dr."). Other
// abbreviations split, and that is accepted.
package ssml

import (
	"strings"
	"unicode"
)

// Paragraph is an ordered list of non-empty, trimmed sentences.
type Paragraph []string

// Document is the segmented narration. Paragraphs are never empty.
type Document struct {
	Paragraphs []Paragraph
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Segment splits raw text into paragraphs on newlines and into sentences
// inside each paragraph. Double quotes become single quotes. Blank lines do
// not produce paragraphs.
func Segment(raw string) Document {
	text := strings.ReplaceAll(strings.TrimSpace(raw), `"`, "'")

	var doc Document
	if text == "" {
		return doc
	}

	for _, chunk := range strings.Split(text, "\n") {
		var p Paragraph
		for _, s := range splitSentences(strings.TrimSpace(chunk)) {
			if s = strings.TrimSpace(s); s != "" {
				p = append(p, s)
			}
		}
		if len(p) > 0 {
			doc.Paragraphs = append(doc.Paragraphs, p)
		}
	}
	return doc
}

// Markup is Segment followed by String.
func Markup(raw string) string {
	return Segment(raw).String()
}

// String renders the document as SSML.
func (d Document) String() string {
	var b strings.Builder
	b.WriteString("<speak>")
	for i, p := range d.Paragraphs {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeParagraph(&b, p)
	}
	b.WriteString("</speak>")
	return b.String()
}

// Sentences returns every sentence in reading order.
func (d Document) Sentences() []string {
	var out []string
	for _, p := range d.Paragraphs {
		out = append(out, p...)
	}
	return out
}

// Empty reports whether the document has nothing to say.
func (d Document) Empty() bool {
	return len(d.Paragraphs) == 0
}

func writeParagraph(b *strings.Builder, p Paragraph) {
	b.WriteString("<p>")
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("<s>")
		escaper.WriteString(b, s)
		b.WriteString("</s>")
	}
	b.WriteString("</p>")
}

func splitSentences(text string) []string {
	runes := []rune(text)
	var (
		out   []string
		start int
	)
	for i, r := range runes {
		if !unicode.IsSpace(r) || i == 0 {
			continue
		}
		if prev := runes[i-1]; prev != '.' && prev != '?' {
			continue
		}
		if dottedAbbrev(runes, i) || titleAbbrev(runes, i) {
			continue
		}
		out = append(out, string(runes[start:i]))
		start = i + 1
	}
	return append(out, string(runes[start:]))
}

// dottedAbbrev matches "x.y." immediately before position i.
func dottedAbbrev(runes []rune, i int) bool {
	return i >= 4 &&
		isWord(runes[i-4]) &&
		runes[i-3] == '.' &&
		isWord(runes[i-2])
}

// titleAbbrev matches "Mr." immediately before position i.
func titleAbbrev(runes []rune, i int) bool {
	return i >= 3 &&
		runes[i-3] >= 'A' && runes[i-3] <= 'Z' &&
		runes[i-2] >= 'a' && runes[i-2] <= 'z' &&
		runes[i-1] == '.'
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
