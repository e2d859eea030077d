package analysis

import (
	"math"
	"testing"

	"github.com/thomas-vilte/gitguard/internal/models"
)

const scoreTolerance = 1e-9

func TestComplexityScore(t *testing.T) {
	scorer := NewComplexityScorer(DefaultWeights())

	tests := []struct {
		name    string
		section string
		change  models.FileChange
		want    float64
	}{
		{
			name:    "empty section still counts its single line",
			section: "",
			change:  models.FileChange{},
			// 1 line * 0.1
			want: 0.1,
		},
		{
			name:    "control flow plus nesting",
			section: "+if x {\n+}\n",
			change:  models.FileChange{Additions: 2},
			// 2 additions * 1.5 + 1 control flow * 3 + depth 1 * 2 + 3 lines * 0.1
			want: 8.3,
		},
		{
			name:    "function and type declarations",
			section: "+type Parser struct {\n+func (p *Parser) Parse() {\n+}\n+}\n",
			change:  models.FileChange{Additions: 4},
			// 4*1.5 + 1 func * 2 + (type + struct) * 4 + depth 2 * 2 + 5 lines * 0.1
			want: 20.5,
		},
		{
			name:    "arrow functions count as functions",
			section: "+const f = () => x\n",
			change:  models.FileChange{Additions: 1},
			// 1*1.5 + 1 arrow * 2 + 2 lines * 0.1
			want: 3.7,
		},
		{
			name:    "deletions weigh less than additions",
			section: "-old line\n",
			change:  models.FileChange{Deletions: 1},
			// 1*1.0 + 2 lines * 0.1
			want: 1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.section, tt.change)
			if math.Abs(got-tt.want) > scoreTolerance {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComplexityScoreToleratesMalformedBraces(t *testing.T) {
	scorer := NewComplexityScorer(DefaultWeights())

	// Unbalanced closers must not drive the depth negative; the stray opener
	// at the end is the only depth actually reached.
	got := scorer.Score("+}}}\n+{\n", models.FileChange{Additions: 2})

	// 2*1.5 + depth 1 * 2 + 3 lines * 0.1
	want := 5.3
	if math.Abs(got-want) > scoreTolerance {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestComplexityScoreKeywordsAreWordBounded(t *testing.T) {
	scorer := NewComplexityScorer(DefaultWeights())

	// "iffy" and "classes" must not count as "if" and "class".
	withSubstrings := scorer.Score("+iffy classes notify\n", models.FileChange{Additions: 1})
	plain := scorer.Score("+aaaa bbbbbbb cccccc\n", models.FileChange{Additions: 1})

	if math.Abs(withSubstrings-plain) > scoreTolerance {
		t.Errorf("keyword substrings changed the score: %v vs %v", withSubstrings, plain)
	}
}

func TestComplexityScoreGrowsWithStructure(t *testing.T) {
	scorer := NewComplexityScorer(DefaultWeights())
	change := models.FileChange{Additions: 3}

	flat := scorer.Score("+a := 1\n+b := 2\n+c := 3\n", change)
	structured := scorer.Score("+if a {\n+for b {\n+switch c {\n", change)

	if structured <= flat {
		t.Errorf("structured section scored %v, flat section %v; want structured higher", structured, flat)
	}
}
