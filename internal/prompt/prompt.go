package prompt

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// BuildCommitPrompt assembles the AI prompt: the user's original message (if
// any), the per-package breakdown, and the diff content the strategy selector
// chose, fenced for the model.
func BuildCommitPrompt(info models.CommitInfo, count int) string {
	var b strings.Builder

	b.WriteString("Please suggest git commit messages following the conventional commits format.\n\n")
	fmt.Fprintf(&b, "Provide exactly %d suggestion(s).\n", count)

	if info.OriginalMessage != "" {
		fmt.Fprintf(&b, "\nOriginal message: %q\n", info.OriginalMessage)
	}

	b.WriteString("\nChanged packages:\n")
	b.WriteString(strings.Repeat("-", 40))

	if len(info.Packages) > 0 {
		for _, pkg := range info.Packages {
			scope := pkg.Scope
			if scope == "" {
				scope = "root"
			}
			fmt.Fprintf(&b, "\n\n📦 Package: %s\nDetected change type: %s\nFiles changed:\n", scope, pkg.Type)
			for _, file := range pkg.Files {
				fmt.Fprintf(&b, "- %s\n", file)
			}
		}
	} else {
		b.WriteString("\n\nFiles changed:\n")
		for _, file := range info.Files {
			fmt.Fprintf(&b, "- %s\n", file)
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n\nGit diff:\n```diff\n")
	b.WriteString(info.Diff)
	if !strings.HasSuffix(info.Diff, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")

	b.WriteString(`Return your response in the following JSON format:
{
  "suggestions": [
    {
      "message": "type(scope): description",
      "explanation": "Brief explanation of why this format was chosen",
      "type": "commit type used",
      "scope": "scope used"
    }
  ]
}

Each message must:
1. Follow the format: type(scope): description
2. Use the most significant package as scope
3. Use one of: feat|fix|docs|style|refactor|perf|test|chore
4. Keep the description clear and concise`)

	return b.String()
}
