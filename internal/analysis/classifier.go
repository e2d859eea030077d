package analysis

import (
	"path"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/models"
)

var (
	testMarkers = []string{".test.", ".spec.", "_test.go", "/tests/", "/__tests__/"}

	configNames = []string{"tsconfig", ".eslintrc", ".prettierrc", "babel.config", "webpack.config", "makefile", "dockerfile"}
	configExts  = []string{".json", ".yml", ".yaml", ".toml", ".ini"}

	secretExts = []string{".pem", ".key", ".p12", ".pfx", ".crt", ".keystore"}

	binaryExts = []string{
		".png", ".jpg", ".jpeg", ".gif", ".ico", ".svg", ".webp",
		".woff", ".woff2", ".ttf", ".eot", ".otf",
		".zip", ".gz", ".tar", ".rar", ".7z",
		".pdf", ".exe", ".dll", ".so", ".dylib", ".bin", ".jar", ".wasm",
	}

	docsMarkers  = []string{".md", "readme", "docs/"}
	styleMarkers = []string{".css", ".scss", ".less", ".styled."}
	fixMarkers   = []string{"fix", "bug", "patch"}
)

// Classify derives classification flags from a file path alone. Pure and
// deterministic: the same path always yields the same flags.
func Classify(filePath string) models.FileFlags {
	lower := strings.ToLower(filePath)
	name := strings.ToLower(path.Base(filePath))
	ext := strings.ToLower(path.Ext(filePath))

	flags := models.FileFlags{}

	for _, m := range testMarkers {
		if strings.Contains(lower, m) {
			flags.IsTest = true
			break
		}
	}

	if strings.HasPrefix(name, ".env") {
		flags.IsEnv = true
	}

	for _, e := range secretExts {
		if ext == e {
			flags.IsSecret = true
			break
		}
	}

	if !flags.IsEnv && !flags.IsSecret {
		for _, n := range configNames {
			if strings.Contains(name, n) {
				flags.IsConfig = true
				break
			}
		}
		if !flags.IsConfig {
			for _, e := range configExts {
				if ext == e {
					flags.IsConfig = true
					break
				}
			}
		}
	}

	for _, e := range binaryExts {
		if ext == e {
			flags.IsBinary = true
			break
		}
	}

	return flags
}

// changeTypePriority fixes the order in which detected change types are
// reported, so the same file set always yields the same primary type.
var changeTypePriority = []string{"feat", "fix", "test", "docs", "style", "chore"}

// DetectChangeTypes infers conventional-commit types from the modified file
// paths. Falls back to "feat" when nothing more specific matches.
func DetectChangeTypes(files []string) []string {
	found := make(map[string]bool)

	for _, file := range files {
		lower := strings.ToLower(file)
		name := strings.ToLower(path.Base(file))

		switch {
		case containsAny(lower, testMarkers):
			found["test"] = true
		case containsAny(lower, docsMarkers):
			found["docs"] = true
		case containsAny(lower, styleMarkers):
			found["style"] = true
		case strings.Contains(name, "package.json") || strings.Contains(name, ".config.") || strings.Contains(name, "tsconfig"):
			found["chore"] = true
		case containsAny(lower, fixMarkers):
			found["fix"] = true
		}
	}

	if len(found) == 0 {
		return []string{"feat"}
	}

	types := make([]string, 0, len(found))
	for _, t := range changeTypePriority {
		if found[t] {
			types = append(types, t)
		}
	}
	return types
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
