package chat

import "regexp"

// Model replies embed illustrative images as inline markdown, per the chat
// system instruction. Renderers split on that pattern instead of treating
// it as prose.
var reInlineImage = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// ImageRef is one inline image reference extracted from message text.
type ImageRef struct {
	Alt string
	URL string
}

// Segment is either a literal text run (Image == nil) or an embedded image.
type Segment struct {
	Text  string
	Image *ImageRef
}

// Segments splits text on inline markdown image references, preserving
// order. Text without any image markup comes back as a single literal
// segment equal to the input.
func Segments(text string) []Segment {
	matches := reInlineImage.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Text: text}}
	}
	var segs []Segment
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segs = append(segs, Segment{Text: text[prev:m[0]]})
		}
		segs = append(segs, Segment{Image: &ImageRef{
			Alt: text[m[2]:m[3]],
			URL: text[m[4]:m[5]],
		}})
		prev = m[1]
	}
	if prev < len(text) {
		segs = append(segs, Segment{Text: text[prev:]})
	}
	return segs
}
