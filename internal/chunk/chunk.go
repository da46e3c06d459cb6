// Package chunk splits raw document text into bounded-size, line-aligned
// segments so each segment fits one extraction request.
package chunk

import "strings"

// DefaultBudget is the default maximum chunk size in characters. Sized so a
// chunk plus the extraction prompt stays well inside model input limits.
const DefaultBudget = 12000

// Split cuts text into chunks of at most budget characters without ever
// splitting a line. Lines keep their original order, so concatenating the
// chunks reproduces the document's line sequence. A single line longer than
// the budget is kept whole in its own chunk. Whitespace-only chunks are not
// emitted. Empty input yields no chunks.
func Split(text string, budget int) []string {
	if budget <= 0 {
		budget = DefaultBudget
	}
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var chunks []string
	var cur strings.Builder

	flush := func() {
		if strings.TrimSpace(cur.String()) != "" {
			chunks = append(chunks, cur.String())
		}
		cur.Reset()
	}

	for _, line := range lines {
		need := len(line)
		if cur.Len() > 0 {
			need++ // joining newline
		}
		if cur.Len() > 0 && cur.Len()+need > budget {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	flush()

	return chunks
}
