package models

// FileFlags holds the classification of a changed file path.
type FileFlags struct {
	IsTest   bool `json:"is_test,omitempty"`
	IsConfig bool `json:"is_config,omitempty"`
	IsSecret bool `json:"is_secret,omitempty"`
	IsEnv    bool `json:"is_env,omitempty"`
	IsBinary bool `json:"is_binary,omitempty"`
}

// FileChange represents one changed file as reported by git, with its
// addition/deletion counts and classification flags. It is immutable input
// for the analysis pipeline.
type FileChange struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	FileFlags
}

// FileSignificance is a scored file: the FileChange it came from, the slice
// of the raw diff that belongs to it, and the heuristic scores. Recomputed on
// every analysis run, never persisted.
type FileSignificance struct {
	FileChange
	DiffSection string  `json:"-"`
	Complexity  float64 `json:"complexity"`
	Score       float64 `json:"score"`
}

// DiffGroup is a set of related files that are included or excluded from the
// packed diff together. Score is the maximum member score.
type DiffGroup struct {
	Files []FileSignificance
	Score float64
}

// PackedDiff is the result of packing scored groups under a length budget.
type PackedDiff struct {
	Diff            string
	IncludedFiles   int
	GroupsIncluded  int
	TotalGroups     int
	EstimatedTokens int
	TruncationNote  string
}

// StrategyName identifies how the diff content was selected for the prompt.
type StrategyName string

const (
	StrategyFull        StrategyName = "full"
	StrategyPrioritized StrategyName = "prioritized"
)

// DiffStrategy is a transient decision record: the chosen diff representation
// plus the score it won with.
type DiffStrategy struct {
	Name    StrategyName
	Content string
	Score   int
}
