package services

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/thomas-vilte/gitguard/internal/analysis"
	"github.com/thomas-vilte/gitguard/internal/logger"
	"github.com/thomas-vilte/gitguard/internal/models"
	"github.com/thomas-vilte/gitguard/internal/ports"
	"github.com/thomas-vilte/gitguard/internal/prompt"
	"github.com/thomas-vilte/gitguard/internal/tokens"
)

// maxSplitDepth bounds the re-analysis recursion; one unstage round always
// leaves a single package group, so this is belt only.
const maxSplitDepth = 3

// AnalysisService sequences the pipeline: cohesion verdict first, then the
// split decision, then scoring, packing and strategy selection, then the
// budget guard, and only then the AI boundary. It is strictly sequential and
// holds no state between runs.
type AnalysisService struct {
	git       ports.GitService
	suggester ports.CommitSuggester
	guard     *tokens.Guard
	prompter  ports.SplitPrompter
	weights   analysis.Weights

	maxDiffLength   int
	includeTests    bool
	prioritizeCore  bool
	ignorePatterns  []string
	maxPromptTokens int
}

type AnalysisServiceConfig struct {
	Git ports.GitService
	// Suggester may be nil when AI is not configured; analysis still runs.
	Suggester ports.CommitSuggester
	Guard     *tokens.Guard
	// Prompter may be nil (auto mode); a split suggestion is then surfaced
	// but everything stays in one commit.
	Prompter ports.SplitPrompter
	Weights  analysis.Weights

	MaxPromptTokens int
	// MaxDiffLength caps the packed diff in characters; defaults to four
	// characters per budgeted token.
	MaxDiffLength  int
	IncludeTests   bool
	PrioritizeCore bool
	IgnorePatterns []string
}

func NewAnalysisService(cfg AnalysisServiceConfig) *AnalysisService {
	maxDiffLength := cfg.MaxDiffLength
	if maxDiffLength <= 0 {
		maxDiffLength = cfg.MaxPromptTokens * 4
	}

	return &AnalysisService{
		git:             cfg.Git,
		suggester:       cfg.Suggester,
		guard:           cfg.Guard,
		prompter:        cfg.Prompter,
		weights:         cfg.Weights,
		maxDiffLength:   maxDiffLength,
		includeTests:    cfg.IncludeTests,
		prioritizeCore:  cfg.PrioritizeCore,
		ignorePatterns:  cfg.IgnorePatterns,
		maxPromptTokens: cfg.MaxPromptTokens,
	}
}

type AnalyzeOptions struct {
	// OriginalMessage is the message the user typed, when running as a
	// prepare-commit-msg hook. Seeds the split suggestion's commit types.
	OriginalMessage string
	// Clipboard marks a manual export: the prompt goes to the clipboard
	// instead of the API, under the larger clipboard ceiling.
	Clipboard bool
	// SuggestionCount is how many AI suggestions to request.
	SuggestionCount int
}

// Analyze runs one full pass over the staging area. A budget rejection marks
// the result Aborted but is not an error; only collaborator failures are.
func (s *AnalysisService) Analyze(ctx context.Context, opts AnalyzeOptions) (*models.AnalysisResult, error) {
	return s.analyze(ctx, opts, 0)
}

func (s *AnalysisService) analyze(ctx context.Context, opts AnalyzeOptions, depth int) (*models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	changes, err := s.git.GetChangedFiles(ctx)
	if err != nil {
		return nil, err
	}
	changes = s.filterIgnored(ctx, changes)

	if len(changes) == 0 {
		log.Info("no staged changes, nothing to analyze")
		return &models.AnalysisResult{}, nil
	}

	diff, err := s.git.GetDiff(ctx)
	if err != nil {
		return nil, err
	}
	if diff == "" {
		log.Info("empty diff, nothing to analyze")
		return &models.AnalysisResult{Files: changes}, nil
	}

	result := &models.AnalysisResult{Files: changes}

	cohesion := analysis.NewCohesionAnalyzer(s.weights)
	split := cohesion.Analyze(changes, opts.OriginalMessage)
	if split != nil {
		result.Split = split

		if s.prompter != nil && depth < maxSplitDepth {
			choice, err := s.prompter.ChooseSplit(ctx, *split)
			if err != nil {
				return nil, err
			}

			if !choice.KeepAll && choice.Index >= 0 && choice.Index < len(split.Suggestions) {
				chosen := split.Suggestions[choice.Index]
				request := excludedFiles(changes, chosen.Files)

				log.Info("split chosen, re-scoping staged files",
					"kept", len(chosen.Files),
					"unstaged", len(request.Files))

				// The unstage must land before re-analysis, otherwise the
				// excluded files would be counted again.
				if err := s.git.Unstage(ctx, request.Files); err != nil {
					return nil, err
				}
				return s.analyze(ctx, opts, depth+1)
			}

			log.Info("keeping all changes in one commit")
		}
	}

	sections := analysis.SplitDiff(diff)
	scorer := analysis.NewFileScorer(s.weights, analysis.ScorerOptions{
		IncludeTests:   s.includeTests,
		PrioritizeCore: s.prioritizeCore,
	})
	scored := scorer.ScoreFiles(changes, sections)
	groups := analysis.GroupRelated(scored)

	packer := analysis.NewPacker(s.maxDiffLength)
	result.Packed = packer.Pack(groups)

	result.Strategy = analysis.SelectStrategy(analysis.StrategyInput{
		FullDiff:        diff,
		Packed:          result.Packed,
		MaxPromptTokens: s.maxPromptTokens,
		Clipboard:       opts.Clipboard,
	})

	log.Debug("diff strategy selected",
		"strategy", string(result.Strategy.Name),
		"files", result.Packed.IncludedFiles,
		"groups", result.Packed.GroupsIncluded)

	info := models.CommitInfo{
		Files:           filePaths(changes),
		Diff:            result.Strategy.Content,
		OriginalMessage: opts.OriginalMessage,
	}
	if split != nil {
		info.Packages = split.Suggestions
	}
	result.Prompt = prompt.BuildCommitPrompt(info, opts.SuggestionCount)

	result.Budget = s.guard.Check(ctx, result.Prompt)

	if opts.Clipboard {
		if !result.Budget.WithinClipboardLimits {
			result.Aborted = true
			result.AbortReason = "prompt exceeds the clipboard token ceiling"
		}
		return result, nil
	}

	if !result.Budget.WithinAPILimits {
		log.Warn("prompt exceeds the AI budget, skipping the AI call",
			"tokens", result.Budget.EstimatedTokens,
			"max_tokens", result.Budget.MaxPromptTokens)
		result.Aborted = true
		result.AbortReason = "prompt exceeds the configured AI budget"
		return result, nil
	}

	if s.suggester != nil {
		suggestions, err := s.suggester.GenerateSuggestions(ctx, info, opts.SuggestionCount)
		if err != nil {
			return nil, err
		}
		result.Suggestions = suggestions
	}

	return result, nil
}

func (s *AnalysisService) filterIgnored(ctx context.Context, changes []models.FileChange) []models.FileChange {
	if len(s.ignorePatterns) == 0 {
		return changes
	}

	kept := make([]models.FileChange, 0, len(changes))
	for _, change := range changes {
		if s.isIgnored(ctx, change.Path) {
			continue
		}
		kept = append(kept, change)
	}
	return kept
}

func (s *AnalysisService) isIgnored(ctx context.Context, path string) bool {
	for _, pattern := range s.ignorePatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug(ctx, "invalid ignore pattern", "pattern", pattern)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// excludedFiles builds the unstage request: every changed file that is not in
// the kept set.
func excludedFiles(changes []models.FileChange, kept []string) models.UnstageRequest {
	keep := make(map[string]bool, len(kept))
	for _, path := range kept {
		keep[path] = true
	}

	request := models.UnstageRequest{}
	for _, change := range changes {
		if !keep[change.Path] {
			request.Files = append(request.Files, change.Path)
		}
	}
	return request
}

func filePaths(changes []models.FileChange) []string {
	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		paths = append(paths, change.Path)
	}
	return paths
}
