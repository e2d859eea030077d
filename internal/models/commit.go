package models

type (
	// CommitInfo is the input handed to the AI boundary: the file list, the
	// diff content chosen by the strategy selector, and the message the user
	// originally typed (empty outside the hook flow).
	CommitInfo struct {
		Files           []string
		Diff            string
		OriginalMessage string
		Packages        []CommitSplit
	}

	CommitSuggestion struct {
		Message     string
		Explanation string
		Type        string
		Scope       string
		Usage       *TokenUsage
	}
)

// AnalysisResult is everything one orchestrator run produces. Aborted is set
// when the token guard rejected the AI path; the rest of the result is still
// valid in that case.
type AnalysisResult struct {
	Files       []FileChange
	Packed      PackedDiff
	Strategy    DiffStrategy
	Budget      BudgetReport
	Split       *SplitSuggestion
	Prompt      string
	Suggestions []CommitSuggestion
	Aborted     bool
	AbortReason string
}
