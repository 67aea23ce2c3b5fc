package tts

import "strings"

// SplitText splits normalized text into chunks of at most chunkSize
// characters without breaking a sentence across two chunks. Sentences are
// delimited by the period character only; abbreviations, decimals, and
// other terminators are not special-cased. A single sentence longer than chunkSize
// becomes its own oversized chunk rather than being truncated or dropped.
// Empty input yields no chunks.
func SplitText(text string, chunkSize int) []string {
	// Sentence detection operates on one flattened line.
	flat := strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	for _, frag := range strings.Split(flat, ".") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		sentences = append(sentences, frag+".")
	}

	var chunks []string
	var current string
	for _, sentence := range sentences {
		switch {
		case len(current)+len(sentence) > chunkSize && current != "":
			chunks = append(chunks, current)
			current = sentence
		case current != "":
			current += " " + sentence
		default:
			current = sentence
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}
