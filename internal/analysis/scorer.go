package analysis

import (
	"strings"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// FileScorer turns raw complexity into a significance score by applying the
// type and path multipliers, in a fixed order so the suppressions compose the
// same way every run.
type FileScorer struct {
	weights        Weights
	complexity     *ComplexityScorer
	includeTests   bool
	prioritizeCore bool
}

type ScorerOptions struct {
	IncludeTests   bool
	PrioritizeCore bool
}

func NewFileScorer(weights Weights, opts ScorerOptions) *FileScorer {
	return &FileScorer{
		weights:        weights,
		complexity:     NewComplexityScorer(weights),
		includeTests:   opts.IncludeTests,
		prioritizeCore: opts.PrioritizeCore,
	}
}

// ScoreFiles scores every change that has a diff section. Binary files and
// files whose path has no section in the diff are excluded before scoring.
func (s *FileScorer) ScoreFiles(changes []models.FileChange, sections map[string]string) []models.FileSignificance {
	scored := make([]models.FileSignificance, 0, len(changes))

	for _, change := range changes {
		if change.IsBinary {
			continue
		}
		section, ok := sections[change.Path]
		if !ok || section == "" {
			continue
		}

		complexity := s.complexity.Score(section, change)
		scored = append(scored, models.FileSignificance{
			FileChange:  change,
			DiffSection: section,
			Complexity:  complexity,
			Score:       s.applyMultipliers(complexity, change),
		})
	}

	return scored
}

func (s *FileScorer) applyMultipliers(score float64, change models.FileChange) float64 {
	w := s.weights

	if change.IsTest && !s.includeTests {
		score *= w.TestMultiplier
	}
	if change.IsConfig {
		score *= w.ConfigMultiplier
	}
	if s.prioritizeCore && isCorePath(change.Path) {
		score *= w.CoreMultiplier
	}

	depth := pathDepth(change.Path)
	score *= 1 + w.DepthStep*float64(depth)

	return score
}

// isCorePath reports whether no path segment marks the file as auxiliary.
func isCorePath(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "utils", "tests", "config":
			return false
		}
	}
	return true
}

func pathDepth(path string) int {
	return len(strings.Split(path, "/"))
}
