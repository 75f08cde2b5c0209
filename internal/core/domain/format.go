package domain

import "strings"

// Format substitutes {name} placeholders in s with entries from values.
// Placeholders without a value are left untouched, braces included, so a string
// can be formatted in several passes as more values become known.
func Format(s string, values map[string]string) string {
	if !strings.Contains(s, "{") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			b.WriteString(s)
			break
		}
		closing := strings.IndexByte(s[open+1:], '}')
		if closing < 0 {
			b.WriteString(s)
			break
		}
		closing += open + 1

		key := s[open+1 : closing]
		b.WriteString(s[:open])
		if v, ok := values[key]; ok && isPlaceholder(key) {
			b.WriteString(v)
			s = s[closing+1:]
			continue
		}
		// Keep the opening brace and rescan after it so nested braces still resolve.
		b.WriteByte('{')
		s = s[open+1:]
	}

	return b.String()
}

// FormatAll applies Format to every element of ss, returning a new slice.
func FormatAll(ss []string, values map[string]string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = Format(s, values)
	}
	return out
}

func isPlaceholder(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r != '_' && r != '-' && r != '.' &&
			(r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
