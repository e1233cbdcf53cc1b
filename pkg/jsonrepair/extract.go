package jsonrepair

import (
	"encoding/json"
	"sort"
	"strings"

	"tripwise/pkg/utils"
)

// Completion services wrap JSON in prose with one of these lead-ins often
// enough that scanning after them is worth a dedicated pass.
var knownPrefixes = []string{"Here is the JSON:", "Response:", "Result:", "Output:"}

// Extract recovers a single JSON object from free-form model output. The
// model may wrap the document in a markdown fence, surround it with
// explanatory prose, or truncate it mid-array at its token ceiling, so
// recovery is attempted in order of strictness:
//
//  1. strip a markdown code fence and parse what remains
//  2. parse the span from the first '{' to the last '}'
//  3. scan for a balanced object after a known prose prefix
//  4. enumerate every balanced brace group, longest first
//  5. append the missing closing brackets/braces (truncated output)
//  6. parse only the prefix up to the last '}' (truncation salvage)
//
// The first strategy that yields valid JSON wins. If all fail, the returned
// ExtractionError carries the raw text for diagnostics.
func Extract(raw string) (json.RawMessage, error) {
	cleaned := stripFences(raw)

	if doc, ok := tryParse(cleaned); ok {
		return doc, nil
	}

	if start, end := strings.Index(cleaned, "{"), strings.LastIndex(cleaned, "}"); start != -1 && end > start {
		if doc, ok := tryParse(cleaned[start : end+1]); ok {
			return doc, nil
		}
	}

	for _, prefix := range knownPrefixes {
		idx := strings.Index(cleaned, prefix)
		if idx == -1 {
			continue
		}
		start := strings.Index(cleaned[idx:], "{")
		if start == -1 {
			continue
		}
		start += idx
		end := matchingBrace(cleaned, start)
		if end == -1 {
			continue
		}
		if doc, ok := tryParse(cleaned[start : end+1]); ok {
			return doc, nil
		}
	}

	candidates := balancedGroups(cleaned)
	sort.Slice(candidates, func(i, j int) bool { return len(candidates[i]) > len(candidates[j]) })
	for _, candidate := range candidates {
		if doc, ok := tryParse(candidate); ok {
			return doc, nil
		}
	}

	if doc, ok := tryParse(closeTruncated(cleaned)); ok {
		return doc, nil
	}

	if end := strings.LastIndex(cleaned, "}"); end != -1 {
		if doc, ok := tryParse(cleaned[:end+1]); ok {
			return doc, nil
		}
	}

	return nil, &utils.ExtractionError{Raw: raw}
}

func tryParse(s string) (json.RawMessage, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !json.Valid([]byte(s)) {
		return nil, false
	}
	return json.RawMessage(s), true
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(text, "```json"):
		text = text[len("```json"):]
	case strings.HasPrefix(text, "```JSON"):
		text = text[len("```JSON"):]
	case strings.HasPrefix(text, "```"):
		text = text[len("```"):]
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// matchingBrace returns the index of the '}' closing the '{' at start, or -1.
// Braces inside string literals are ignored, so a value like "a {nested}
// remark" cannot throw the depth count off.
func matchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// balancedGroups collects every balanced {...} span in s, including nested
// ones, using the same string-aware scan as matchingBrace.
func balancedGroups(s string) []string {
	var groups []string
	var starts []int
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			starts = append(starts, i)
		case '}':
			if len(starts) > 0 {
				start := starts[len(starts)-1]
				starts = starts[:len(starts)-1]
				groups = append(groups, s[start:i+1])
			}
		}
	}
	return groups
}

// closeTruncated appends the deficit of closing brackets, then closing
// braces, to text cut off mid-document. Recovers output truncated at the
// token ceiling whenever the cut fell strictly after a complete value.
func closeTruncated(s string) string {
	openBraces, closeBraces := 0, 0
	openBrackets, closeBrackets := 0, 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			openBraces++
		case '}':
			closeBraces++
		case '[':
			openBrackets++
		case ']':
			closeBrackets++
		}
	}
	fixed := strings.TrimRight(s, " \t\n\r,")
	fixed += strings.Repeat("]", max(openBrackets-closeBrackets, 0))
	fixed += strings.Repeat("}", max(openBraces-closeBraces, 0))
	return fixed
}
