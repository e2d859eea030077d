package analysis

import (
	"strings"
	"testing"
)

func TestSplitDiff(t *testing.T) {
	diff := "diff --git a/src/a.ts b/src/a.ts\n" +
		"index 111..222 100644\n" +
		"--- a/src/a.ts\n" +
		"+++ b/src/a.ts\n" +
		"@@ -1 +1 @@\n" +
		"+added line\n" +
		"diff --git a/src/b.ts b/src/b.ts\n" +
		"@@ -1 +1 @@\n" +
		"-removed line\n"

	sections := SplitDiff(diff)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}

	a, ok := sections["src/a.ts"]
	if !ok {
		t.Fatal("missing section for src/a.ts")
	}
	if !strings.HasPrefix(a, "diff --git a/src/a.ts") {
		t.Errorf("section must start at its own header, got %q", a)
	}
	if !strings.Contains(a, "+added line") || strings.Contains(a, "-removed line") {
		t.Errorf("section content bled across files: %q", a)
	}

	if b := sections["src/b.ts"]; !strings.Contains(b, "-removed line") {
		t.Errorf("section for src/b.ts = %q", b)
	}
}

func TestSplitDiffReassemblesLosslessly(t *testing.T) {
	diff := "diff --git a/x b/x\n+1\n" +
		"diff --git a/y b/y\n+2\n"

	sections := SplitDiff(diff)

	total := 0
	for _, section := range sections {
		total += len(section)
	}
	if total != len(diff) {
		t.Errorf("sections cover %d characters, diff has %d", total, len(diff))
	}
}

func TestSplitDiffToleratesMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want int
	}{
		{name: "empty diff", diff: "", want: 0},
		{name: "no headers at all", diff: "+just a line\n-another\n", want: 0},
		{
			name: "leading junk before the first header",
			diff: "warning: CRLF\ndiff --git a/x b/x\n+1\n",
			want: 1,
		},
		{
			name: "header without a path",
			diff: "diff --git gibberish\n+orphan\ndiff --git a/x b/x\n+1\n",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := SplitDiff(tt.diff)
			if len(sections) != tt.want {
				t.Errorf("got %d sections, want %d", len(sections), tt.want)
			}
		})
	}
}
