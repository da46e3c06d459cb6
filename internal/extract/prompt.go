package extract

import (
	"fmt"
	"strings"
)

const systemPrompt = `You extract practice questions from study material.

Rules:
- Keep every textual field (question text, options, explanation) in the same language as the source document. Do not translate.
- Classify every question as exactly one of: "single" (one correct option), "multiple" (several correct options), "truefalse" (true/false judgment).
- Strip list-marker prefixes such as "A.", "B)", "1." or "一、" from option text.
- Compute correctIndices as zero-based positions into the options array.
- If the segment cuts a question off mid-sentence at its start or end, discard that question entirely rather than guessing.
- If an explanation is missing in the source, write a brief one yourself in the document's language.
- Return only the JSON object, nothing else.`

// buildPrompt wraps one document chunk in the extraction instruction.
func buildPrompt(chunkText string) string {
	var b strings.Builder
	b.WriteString("Extract all practice questions from the following document segment.\n")
	fmt.Fprintf(&b, "\n--- SEGMENT START ---\n%s\n--- SEGMENT END ---\n", chunkText)
	return b.String()
}
