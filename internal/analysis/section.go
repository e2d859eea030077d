package analysis

import "strings"

// SplitDiff slices a raw unified diff into per-file sections keyed by the
// post-image path of each "diff --git" header. Malformed headers are
// tolerated: lines before the first recognizable header are dropped, and a
// header without a parsable path starts an anonymous section that is
// discarded. Absence of a section for a changed file is an expected case, not
// an error.
func SplitDiff(diff string) map[string]string {
	sections := make(map[string]string)
	if diff == "" {
		return sections
	}

	var current string
	var buf strings.Builder

	flush := func() {
		if current != "" && buf.Len() > 0 {
			sections[current] = buf.String()
		}
		buf.Reset()
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		trimmed := strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(trimmed, "diff --git ") {
			flush()
			current = parseDiffHeader(trimmed)
		}
		if current != "" {
			buf.WriteString(line)
		}
	}
	flush()

	return sections
}

// parseDiffHeader extracts the b/ path from a "diff --git a/x b/y" line.
// Returns "" when the line does not carry one.
func parseDiffHeader(line string) string {
	idx := strings.LastIndex(line, " b/")
	if idx < 0 {
		return ""
	}
	return line[idx+len(" b/"):]
}
