package ssml

// Chunks renders the document as one or more standalone <speak> documents,
// each at most maxBytes long where possible. Paragraphs are kept together
// when they fit; an oversized paragraph is split between sentences. A single
// sentence longer than maxBytes is emitted on its own and left to the engine.
func (d Document) Chunks(maxBytes int) []string {
	whole := d.String()
	if maxBytes <= 0 || len(whole) <= maxBytes {
		return []string{whole}
	}

	var pieces []Paragraph
	for _, p := range d.Paragraphs {
		if size(p) <= maxBytes {
			pieces = append(pieces, p)
			continue
		}
		var cur Paragraph
		for _, s := range p {
			next := append(cur[:len(cur):len(cur)], s)
			if len(cur) > 0 && size(next) > maxBytes {
				pieces = append(pieces, cur)
				cur = Paragraph{s}
				continue
			}
			cur = next
		}
		if len(cur) > 0 {
			pieces = append(pieces, cur)
		}
	}

	var (
		chunks []string
		cur    Document
	)
	for _, p := range pieces {
		next := Document{Paragraphs: append(cur.Paragraphs[:len(cur.Paragraphs):len(cur.Paragraphs)], p)}
		if !cur.Empty() && len(next.String()) > maxBytes {
			chunks = append(chunks, cur.String())
			cur = Document{Paragraphs: []Paragraph{p}}
			continue
		}
		cur = next
	}
	if !cur.Empty() {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

func size(paragraphs ...Paragraph) int {
	return len(Document{Paragraphs: paragraphs}.String())
}
