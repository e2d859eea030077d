package analysis

import (
	"math"
	"testing"

	"github.com/thomas-vilte/gitguard/internal/models"
)

const section = "+if x {\n+  doWork()\n+}\n"

func scoreOne(t *testing.T, scorer *FileScorer, change models.FileChange) float64 {
	t.Helper()

	scored := scorer.ScoreFiles(
		[]models.FileChange{change},
		map[string]string{change.Path: section},
	)
	if len(scored) != 1 {
		t.Fatalf("expected one scored file, got %d", len(scored))
	}
	return scored[0].Score
}

func TestScoreFilesSkipsBinariesAndMissingSections(t *testing.T) {
	scorer := NewFileScorer(DefaultWeights(), ScorerOptions{})

	changes := []models.FileChange{
		{Path: "src/engine.ts", Additions: 3},
		{Path: "assets/logo.png", Additions: 1, FileFlags: models.FileFlags{IsBinary: true}},
		{Path: "src/orphan.ts", Additions: 2},
	}
	sections := map[string]string{
		"src/engine.ts":   section,
		"assets/logo.png": section,
	}

	scored := scorer.ScoreFiles(changes, sections)

	if len(scored) != 1 {
		t.Fatalf("expected only the text file with a section, got %d entries", len(scored))
	}
	if scored[0].Path != "src/engine.ts" {
		t.Errorf("scored the wrong file: %s", scored[0].Path)
	}
	if scored[0].DiffSection != section {
		t.Errorf("scored entry lost its diff section")
	}
}

func TestScoreFilesTestMultiplier(t *testing.T) {
	tests := []struct {
		name         string
		includeTests bool
		wantRatio    float64
	}{
		{name: "tests suppressed by default", includeTests: false, wantRatio: 0.3},
		{name: "include_tests keeps tests at full weight", includeTests: true, wantRatio: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewFileScorer(DefaultWeights(), ScorerOptions{IncludeTests: tt.includeTests})

			plain := scoreOne(t, scorer, models.FileChange{Path: "src/a.ts", Additions: 3})
			test := scoreOne(t, scorer, models.FileChange{
				Path:      "src/b.ts",
				Additions: 3,
				FileFlags: models.FileFlags{IsTest: true},
			})

			if ratio := test / plain; math.Abs(ratio-tt.wantRatio) > scoreTolerance {
				t.Errorf("test/plain ratio = %v, want %v", ratio, tt.wantRatio)
			}
		})
	}
}

func TestScoreFilesConfigMultiplier(t *testing.T) {
	scorer := NewFileScorer(DefaultWeights(), ScorerOptions{})

	plain := scoreOne(t, scorer, models.FileChange{Path: "src/a.ts", Additions: 3})
	config := scoreOne(t, scorer, models.FileChange{
		Path:      "src/b.ts",
		Additions: 3,
		FileFlags: models.FileFlags{IsConfig: true},
	})

	if ratio := config / plain; math.Abs(ratio-0.5) > scoreTolerance {
		t.Errorf("config/plain ratio = %v, want 0.5", ratio)
	}
}

func TestScoreFilesCoreMultiplier(t *testing.T) {
	scorer := NewFileScorer(DefaultWeights(), ScorerOptions{PrioritizeCore: true})

	core := scoreOne(t, scorer, models.FileChange{Path: "src/domain/engine.ts", Additions: 3})
	aux := scoreOne(t, scorer, models.FileChange{Path: "src/utils/helper.ts", Additions: 3})

	if ratio := core / aux; math.Abs(ratio-1.5) > scoreTolerance {
		t.Errorf("core/aux ratio = %v, want 1.5", ratio)
	}
}

func TestScoreFilesDeeperPathsScoreHigher(t *testing.T) {
	scorer := NewFileScorer(DefaultWeights(), ScorerOptions{})

	paths := []string{"a.ts", "x/a.ts", "x/y/a.ts", "x/y/z/a.ts"}
	prev := 0.0
	for i, path := range paths {
		score := scoreOne(t, scorer, models.FileChange{Path: path, Additions: 3})
		if i > 0 && score <= prev {
			t.Errorf("score for %q (%v) not above shallower path (%v)", path, score, prev)
		}
		prev = score
	}
}
