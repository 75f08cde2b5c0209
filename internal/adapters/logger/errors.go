package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// errorEntry is one link of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into its chain of messages. zerr errors
// contribute their own message and metadata; any other error ends the chain
// with its full text. Joined errors contribute each branch in order.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			return entries
		}

		z, ok := err.(*zerr.Error)
		if !ok {
			return append(entries, errorEntry{Message: err.Error(), Metadata: pending})
		}

		// Metadata-only wrappers annotate the next link that carries a message.
		pending = mergeMetadata(pending, z.Metadata())
		if z.Message() != "" {
			if pending == nil {
				pending = map[string]any{}
			}
			entries = append(entries, errorEntry{Message: z.Message(), Metadata: pending})
			pending = nil
		}
		err = errors.Unwrap(err)
	}
	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = make(map[string]any, len(b))
	}
	for k, v := range b {
		a[k] = v
	}
	return a
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by:" list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, e := range entries {
		msgLines := strings.Split(e.Message, "\n")
		head, indent := "    "+"→ ", "      "
		if i == 0 {
			head, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, head+msgLines[0])
		for _, l := range msgLines[1:] {
			lines = append(lines, indent+l)
		}

		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, e.Metadata[k]))
		}
	}
	return strings.Join(lines, "\n")
}
