package extract

import "strings"

// SynthesizeHTML rebuilds minimal paragraph markup from extracted plain
// text. Paragraphs are split on blank lines; empty segments are dropped.
func SynthesizeHTML(text string) string {
	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			b.WriteString("<p>")
			b.WriteString(para)
			b.WriteString("</p>")
		}
	}
	return b.String()
}
