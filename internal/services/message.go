package services

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/analysis"
	"github.com/thomas-vilte/gitguard/internal/models"
)

// FormatFallbackMessage builds the deterministic conventional-commit message
// used when the AI path is unavailable or declined: the original description
// under the dominant package's type and scope, with an affected-packages
// trailer when the commit spans several.
func FormatFallbackMessage(result *models.AnalysisResult, originalMessage string) string {
	commitType, desc := splitTypeAndDescription(originalMessage)

	if result.Split != nil && len(result.Split.Suggestions) > 0 {
		main := result.Split.Suggestions[0]
		if commitType == "" {
			commitType = main.Type
		}
		scope := main.Scope
		if scope == "" {
			scope = "root"
		}

		message := fmt.Sprintf("%s(%s): %s", commitType, scope, desc)
		if len(result.Split.Suggestions) > 1 {
			var trailer strings.Builder
			trailer.WriteString("\n\nAffected packages:")
			for _, sub := range result.Split.Suggestions {
				name := sub.Scope
				if name == "" {
					name = "root"
				}
				trailer.WriteString("\n- " + name)
			}
			message += trailer.String()
		}
		return message
	}

	paths := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}

	if commitType == "" {
		commitType = analysis.DetectChangeTypes(paths)[0]
	}
	return fmt.Sprintf("%s(%s): %s", commitType, primaryScope(paths), desc)
}

// splitTypeAndDescription separates "fix(core): msg" into its type and
// description; a message without a conventional prefix is all description.
func splitTypeAndDescription(message string) (commitType, desc string) {
	message = strings.TrimSpace(message)
	if !strings.Contains(message, ":") {
		return "", message
	}

	parts := strings.SplitN(message, ":", 2)
	typePart := strings.TrimSpace(parts[0])
	if i := strings.Index(typePart, "("); i >= 0 {
		typePart = typePart[:i]
	}

	switch typePart {
	case "feat", "fix", "docs", "style", "refactor", "perf", "test", "chore":
		return typePart, strings.TrimSpace(parts[1])
	}
	return "", message
}

// primaryScope is the shared top-level directory of the change set, the
// package name for monorepo-style packages/ paths, or "root".
func primaryScope(paths []string) string {
	scope := ""
	for i, path := range paths {
		parts := strings.Split(path, "/")
		var current string
		switch {
		case len(parts) == 1:
			current = "root"
		case parts[0] == "packages" && len(parts) > 2:
			current = parts[1]
		default:
			current = parts[0]
		}

		if i == 0 {
			scope = current
		} else if scope != current {
			return "root"
		}
	}
	if scope == "" {
		return "root"
	}
	return scope
}
