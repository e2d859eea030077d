package analysis

import (
	"testing"

	"github.com/thomas-vilte/gitguard/internal/models"
)

func sig(path string, score float64) models.FileSignificance {
	return models.FileSignificance{
		FileChange:  models.FileChange{Path: path},
		DiffSection: "diff --git a/" + path + " b/" + path + "\n",
		Score:       score,
	}
}

func TestGroupRelatedByDirectory(t *testing.T) {
	files := []models.FileSignificance{
		sig("src/core/engine.ts", 10),
		sig("src/core/parser.ts", 5),
		sig("lib/io/reader.ts", 7),
	}

	groups := GroupRelated(files)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Files) != 2 {
		t.Errorf("expected src/core files together, got %d in first group", len(groups[0].Files))
	}
	if groups[0].Score != 10 {
		t.Errorf("group score = %v, want the best member's 10", groups[0].Score)
	}
}

func TestGroupRelatedByBasename(t *testing.T) {
	// The test file lives in another directory; the shared stem still pulls
	// it into the implementation's group.
	files := []models.FileSignificance{
		sig("src/parser.ts", 10),
		sig("tests/parser.test.ts", 2),
		sig("lib/render.ts", 4),
	}

	groups := GroupRelated(files)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	first := groups[0]
	if len(first.Files) != 2 {
		t.Fatalf("expected parser and its test together, got %d files", len(first.Files))
	}
	if first.Files[0].Path != "src/parser.ts" || first.Files[1].Path != "tests/parser.test.ts" {
		t.Errorf("unexpected group members: %s, %s", first.Files[0].Path, first.Files[1].Path)
	}
}

func TestGroupRelatedIsAPartition(t *testing.T) {
	files := []models.FileSignificance{
		sig("a.ts", 1),
		sig("src/a.ts", 2),
		sig("src/b.ts", 3),
		sig("src/deep/c.ts", 4),
		sig("src/deep/c.test.ts", 5),
		sig("README.md", 6),
	}

	groups := GroupRelated(files)

	seen := make(map[string]int)
	total := 0
	for _, group := range groups {
		for _, file := range group.Files {
			seen[file.Path]++
			total++
		}
	}

	if total != len(files) {
		t.Fatalf("groups hold %d files, input had %d", total, len(files))
	}
	for path, count := range seen {
		if count != 1 {
			t.Errorf("file %s appears in %d groups", path, count)
		}
	}
}

func TestGroupRelatedEmptyInput(t *testing.T) {
	groups := GroupRelated(nil)
	if len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(groups))
	}
}
