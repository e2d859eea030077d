package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// CohesionAnalyzer decides whether a staged change set belongs in one commit
// or should be split per package. Grouping here is coarser than the diff
// grouper: one bucket per top-level directory, with monorepo-style
// packages/<name> trees getting one bucket per package and loose root files
// pooled together.
type CohesionAnalyzer struct {
	weights Weights
}

func NewCohesionAnalyzer(weights Weights) *CohesionAnalyzer {
	return &CohesionAnalyzer{weights: weights}
}

type packageGroup struct {
	scope string
	files []models.FileChange
	churn int
}

// Analyze returns a split suggestion when more than one package group passes
// the significance threshold, nil when the set is cohesive. messageHint, when
// non-empty, seeds the commit type and description of every sub-suggestion.
func (a *CohesionAnalyzer) Analyze(changes []models.FileChange, messageHint string) *models.SplitSuggestion {
	if len(changes) == 0 {
		return nil
	}

	groups := groupByPackage(changes)
	if len(groups) <= 1 {
		return nil
	}

	significant := 0
	for _, g := range groups {
		if g.churn >= a.weights.SplitThreshold {
			significant++
		}
	}
	if significant < 2 {
		return nil
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].churn > groups[j].churn
	})

	hintType, hintDesc := parseMessageHint(messageHint)

	scopes := make([]string, 0, len(groups))
	suggestions := make([]models.CommitSplit, 0, len(groups))
	commands := make([]string, 0, len(groups))

	for i, g := range groups {
		scope := g.scope
		display := scope
		if display == "" {
			display = "root"
		}
		scopes = append(scopes, display)

		paths := make([]string, 0, len(g.files))
		for _, f := range g.files {
			paths = append(paths, f.Path)
		}

		commitType := hintType
		if commitType == "" {
			commitType = DetectChangeTypes(paths)[0]
		}

		desc := hintDesc
		if desc == "" {
			desc = "update " + display
		}

		message := fmt.Sprintf("%s(%s): %s", commitType, display, desc)
		suggestions = append(suggestions, models.CommitSplit{
			Scope:   scope,
			Message: message,
			Type:    commitType,
			Files:   paths,
			Order:   i + 1,
		})
		commands = append(commands, fmt.Sprintf("git commit -m %q -- %s", message, strings.Join(paths, " ")))
	}

	return &models.SplitSuggestion{
		Reason:      fmt.Sprintf("changes span %d packages: %s", len(groups), strings.Join(scopes, ", ")),
		Suggestions: suggestions,
		Commands:    commands,
	}
}

// groupByPackage buckets files by their top-level path segment, descending
// one level into packages/ so each monorepo package gets its own bucket.
// Files without a directory land in the root bucket (empty scope). First-seen
// order is preserved so the verdict is deterministic.
func groupByPackage(changes []models.FileChange) []packageGroup {
	index := make(map[string]int)
	groups := make([]packageGroup, 0)

	for _, change := range changes {
		key, scope := packageKey(change.Path)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, packageGroup{scope: scope})
		}
		groups[i].files = append(groups[i].files, change)
		groups[i].churn += change.Additions + change.Deletions
	}

	return groups
}

func packageKey(path string) (key, scope string) {
	parts := strings.Split(path, "/")
	if len(parts) == 1 {
		return "root", ""
	}
	if parts[0] == "packages" && len(parts) > 2 {
		return "packages/" + parts[1], parts[1]
	}
	return parts[0], parts[0]
}

// parseMessageHint pulls a conventional-commit type and description out of a
// message like "fix(core): handle nil" or "feat: add things".
func parseMessageHint(msg string) (commitType, desc string) {
	msg = strings.TrimSpace(msg)
	if msg == "" || !strings.Contains(msg, ":") {
		return "", msg
	}

	parts := strings.SplitN(msg, ":", 2)
	typePart := strings.TrimSpace(parts[0])
	desc = strings.TrimSpace(parts[1])

	if i := strings.Index(typePart, "("); i >= 0 {
		typePart = typePart[:i]
	}

	if isConventionalType(typePart) {
		return typePart, desc
	}
	return "", msg
}

func isConventionalType(t string) bool {
	switch t {
	case "feat", "fix", "docs", "style", "refactor", "perf", "test", "chore":
		return true
	}
	return false
}
