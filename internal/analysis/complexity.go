package analysis

import (
	"strings"
	"unicode"

	"github.com/thomas-vilte/gitguard/internal/models"
)

var (
	controlFlowKeywords = map[string]bool{
		"if": true, "else": true, "switch": true, "for": true, "while": true,
	}
	functionKeywords = map[string]bool{
		"func": true, "function": true, "def": true, "fn": true,
	}
	typeDeclKeywords = map[string]bool{
		"type": true, "class": true, "interface": true, "struct": true, "enum": true,
	}
)

// ComplexityScorer estimates how structurally involved one file's diff
// section is. It is a line scanner, not a parser: unmatched braces or
// truncated hunks degrade the estimate instead of failing.
type ComplexityScorer struct {
	weights Weights
}

func NewComplexityScorer(weights Weights) *ComplexityScorer {
	return &ComplexityScorer{weights: weights}
}

// Score computes the heuristic complexity of a diff section:
// additions and deletions from the change metadata, weighted keyword counts,
// the maximum brace-nesting depth reached while scanning, and a small
// per-line term.
func (s *ComplexityScorer) Score(section string, change models.FileChange) float64 {
	lines := strings.Split(section, "\n")

	var controlFlow, functions, typeDecls int
	var depth, maxDepth int

	for _, line := range lines {
		for _, word := range splitWords(line) {
			switch {
			case controlFlowKeywords[word]:
				controlFlow++
			case functionKeywords[word]:
				functions++
			case typeDeclKeywords[word]:
				typeDecls++
			}
		}
		functions += strings.Count(line, "=>")

		for _, r := range line {
			switch r {
			case '{':
				depth++
				if depth > maxDepth {
					maxDepth = depth
				}
			case '}':
				if depth > 0 {
					depth--
				}
			}
		}
	}

	w := s.weights
	structural := float64(controlFlow)*w.ControlFlow +
		float64(functions)*w.Function +
		float64(typeDecls)*w.TypeDecl +
		float64(maxDepth)*w.Nesting

	return float64(change.Additions)*w.Addition +
		float64(change.Deletions)*w.Deletion +
		structural +
		float64(len(lines))*w.LineCount
}

func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
