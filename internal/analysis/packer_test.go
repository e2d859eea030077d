package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/thomas-vilte/gitguard/internal/models"
)

func member(score float64, section string) models.FileSignificance {
	return models.FileSignificance{
		FileChange:  models.FileChange{Path: "x"},
		DiffSection: section,
		Score:       score,
	}
}

func TestPackEverythingFits(t *testing.T) {
	groups := []models.DiffGroup{
		{Score: 5, Files: []models.FileSignificance{member(5, "BBBB")}},
		{Score: 10, Files: []models.FileSignificance{member(10, "AAAA"), member(8, "aaaa")}},
	}

	packed := NewPacker(100).Pack(groups)

	if packed.Diff != "AAAAaaaaBBBB" {
		t.Errorf("Diff = %q, want best group first, best member first", packed.Diff)
	}
	if packed.IncludedFiles != 3 || packed.GroupsIncluded != 2 {
		t.Errorf("IncludedFiles = %d, GroupsIncluded = %d, want 3 and 2",
			packed.IncludedFiles, packed.GroupsIncluded)
	}
	if packed.TotalGroups != 2 {
		t.Errorf("TotalGroups = %d, want 2", packed.TotalGroups)
	}
	if packed.TruncationNote != "" {
		t.Errorf("unexpected truncation note: %q", packed.TruncationNote)
	}
	if packed.EstimatedTokens != 3 {
		t.Errorf("EstimatedTokens = %d, want 3 for 12 characters", packed.EstimatedTokens)
	}
}

func TestPackStopsWhenBestGroupDoesNotFit(t *testing.T) {
	// The second group's small sections would fit, but packing must not
	// fragment the budget once the highest-scored group is rejected.
	groups := []models.DiffGroup{
		{Score: 10, Files: []models.FileSignificance{member(10, strings.Repeat("A", 60))}},
		{Score: 5, Files: []models.FileSignificance{member(5, "BBBB")}},
	}

	packed := NewPacker(50).Pack(groups)

	if packed.Diff != "" {
		t.Errorf("Diff = %q, want empty", packed.Diff)
	}
	if packed.GroupsIncluded != 0 || packed.IncludedFiles != 0 {
		t.Errorf("nothing should have been packed, got %d files in %d groups",
			packed.IncludedFiles, packed.GroupsIncluded)
	}
	if packed.TruncationNote != "2 related group(s) omitted to fit the diff budget" {
		t.Errorf("TruncationNote = %q", packed.TruncationNote)
	}
}

func TestPackLandingExactlyOnTheBoundary(t *testing.T) {
	groups := []models.DiffGroup{
		{Score: 1, Files: []models.FileSignificance{member(1, strings.Repeat("A", 50))}},
	}

	packed := NewPacker(50).Pack(groups)

	if packed.IncludedFiles != 1 {
		t.Errorf("a section of exactly maxLength must fit, got %d files", packed.IncludedFiles)
	}
}

func TestPackStopsAtTheFirstOversizedMember(t *testing.T) {
	// The small trailing member would fit, but packing past a misfit would
	// make a larger budget able to pack fewer files.
	groups := []models.DiffGroup{
		{Score: 10, Files: []models.FileSignificance{
			member(10, strings.Repeat("A", 10)),
			member(5, strings.Repeat("B", 100)),
			member(3, strings.Repeat("C", 10)),
		}},
	}

	packed := NewPacker(25).Pack(groups)

	if packed.IncludedFiles != 1 {
		t.Errorf("IncludedFiles = %d, want only the top member", packed.IncludedFiles)
	}
	if packed.GroupsIncluded != 1 {
		t.Errorf("GroupsIncluded = %d, want 1", packed.GroupsIncluded)
	}
	if strings.ContainsAny(packed.Diff, "BC") {
		t.Errorf("members past the first misfit leaked into the diff: %q", packed.Diff)
	}
}

func TestPackIncludedFilesNeverDropAsBudgetGrows(t *testing.T) {
	fixtures := map[string][]models.DiffGroup{
		"one group with a large mid-score member": {
			{Score: 10, Files: []models.FileSignificance{
				member(10, strings.Repeat("A", 10)),
				member(8, strings.Repeat("B", 100)),
				member(6, strings.Repeat("C", 60)),
				member(4, strings.Repeat("D", 5)),
			}},
		},
		"several groups": {
			{Score: 9, Files: []models.FileSignificance{member(9, strings.Repeat("A", 17)), member(2, strings.Repeat("B", 13))}},
			{Score: 7, Files: []models.FileSignificance{member(7, strings.Repeat("C", 11))}},
			{Score: 3, Files: []models.FileSignificance{member(3, strings.Repeat("D", 29))}},
		},
	}

	for name, groups := range fixtures {
		t.Run(name, func(t *testing.T) {
			prev := 0
			for maxLength := 0; maxLength <= 200; maxLength++ {
				packed := NewPacker(maxLength).Pack(groups)
				if packed.IncludedFiles < prev {
					t.Fatalf("maxLength %d packs %d files, a smaller budget packed %d",
						maxLength, packed.IncludedFiles, prev)
				}
				prev = packed.IncludedFiles
			}
		})
	}
}

func TestPackIsDeterministic(t *testing.T) {
	groups := []models.DiffGroup{
		{Score: 9, Files: []models.FileSignificance{member(9, strings.Repeat("A", 17)), member(2, strings.Repeat("B", 13))}},
		{Score: 7, Files: []models.FileSignificance{member(7, strings.Repeat("C", 11))}},
		{Score: 3, Files: []models.FileSignificance{member(3, strings.Repeat("D", 29))}},
	}

	first := NewPacker(41).Pack(groups)
	for i := 0; i < 5; i++ {
		if got := NewPacker(41).Pack(groups); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i+2, got, first)
		}
	}
}

func TestPackTinyBudgetKeepsTheDominantFile(t *testing.T) {
	var b strings.Builder
	b.WriteString("diff --git a/src/a.ts b/src/a.ts\n")
	for i := 0; i < 500; i++ {
		b.WriteString("+x\n")
	}
	b.WriteString("diff --git a/src/a.test.ts b/src/a.test.ts\n")
	for i := 0; i < 50; i++ {
		b.WriteString("+x\n")
	}
	diff := b.String()

	changes := []models.FileChange{
		{Path: "src/a.ts", Additions: 500, FileFlags: Classify("src/a.ts")},
		{Path: "src/a.test.ts", Additions: 50, FileFlags: Classify("src/a.test.ts")},
	}

	run := func() models.PackedDiff {
		sections := SplitDiff(diff)
		scored := NewFileScorer(DefaultWeights(), ScorerOptions{}).ScoreFiles(changes, sections)
		groups := GroupRelated(scored)
		if len(groups) != 1 {
			t.Fatalf("expected one related group, got %d", len(groups))
		}
		// Room for the implementation file but not its test.
		return NewPacker(len(sections["src/a.ts"]) + 10).Pack(groups)
	}

	packed := run()

	if packed.IncludedFiles != 1 {
		t.Fatalf("IncludedFiles = %d, want only the dominant file", packed.IncludedFiles)
	}
	if !strings.Contains(packed.Diff, "a/src/a.ts") || strings.Contains(packed.Diff, "a.test") {
		t.Errorf("packed the wrong file: %q", packed.Diff[:40])
	}
	if packed.GroupsIncluded != 1 || packed.TruncationNote != "" {
		t.Errorf("the group itself was packed, no omission expected: %+v", packed)
	}

	if again := run(); !reflect.DeepEqual(again, packed) {
		t.Errorf("second run differs: %+v vs %+v", again, packed)
	}
}

func TestPackNeverExceedsMaxLength(t *testing.T) {
	groups := []models.DiffGroup{
		{Score: 9, Files: []models.FileSignificance{member(9, strings.Repeat("A", 17)), member(2, strings.Repeat("B", 13))}},
		{Score: 7, Files: []models.FileSignificance{member(7, strings.Repeat("C", 11))}},
		{Score: 3, Files: []models.FileSignificance{member(3, strings.Repeat("D", 29))}},
	}

	for _, maxLength := range []int{0, 10, 17, 30, 41, 70} {
		packed := NewPacker(maxLength).Pack(groups)
		if len(packed.Diff) > maxLength {
			t.Errorf("maxLength %d: packed %d characters", maxLength, len(packed.Diff))
		}
	}
}

func TestPackEmptyInput(t *testing.T) {
	packed := NewPacker(100).Pack(nil)

	if packed.Diff != "" || packed.TotalGroups != 0 || packed.TruncationNote != "" {
		t.Errorf("empty input should pack to nothing, got %+v", packed)
	}
}
