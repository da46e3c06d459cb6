package extract

import (
	"encoding/json"
	"strings"
)

// StripFences removes a leading/trailing markdown code fence (``` or
// ```json) around the content, returning the inner text trimmed.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = s[3:]
	// Skip a language tag line such as "json".
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		first := strings.TrimSpace(s[:nl])
		if first == "" || isFenceTag(first) {
			s = s[nl+1:]
		}
	}
	if end := strings.LastIndex(s, "```"); end != -1 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// RepairJSON makes a best-effort attempt to turn a malformed or truncated
// extraction response into parseable JSON. Valid input is returned
// byte-identical. Otherwise code fences are stripped; if the text holds a
// `questions` array truncated mid-element, it is cut back to the last
// complete element boundary and closed. The function never panics and
// never errors; output that still fails to parse is the caller's signal to
// count the chunk as empty.
func RepairJSON(s string) string {
	if json.Valid([]byte(s)) {
		return s
	}

	text := StripFences(s)
	if json.Valid([]byte(text)) {
		return text
	}

	arrStart := strings.Index(text, "[")
	if arrStart != -1 {
		// Last complete array element: an object close followed by a comma.
		if cut := strings.LastIndex(text, "},"); cut > arrStart {
			return text[:cut+1] + "]}"
		}
	}

	trimmed := strings.TrimRight(text, " \t\r\n")
	if strings.HasSuffix(trimmed, "}") {
		return trimmed + "]}"
	}

	return trimmed
}
