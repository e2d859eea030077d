package models

// CommitSplit is one proposed sub-commit of a non-cohesive change set.
// Order is a 1-based sequence used for the suggested commit commands.
type CommitSplit struct {
	Scope   string   `json:"scope,omitempty"`
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Files   []string `json:"files"`
	Order   int      `json:"order"`
}

// SplitSuggestion is produced when a change set spans several unrelated
// packages. It is surfaced to the user once per analysis and discarded after
// a choice is made.
type SplitSuggestion struct {
	Reason      string        `json:"reason"`
	Suggestions []CommitSplit `json:"suggestions"`
	Commands    []string      `json:"commands"`
}

// SplitChoice is the user's answer to a SplitSuggestion.
type SplitChoice struct {
	// KeepAll means commit everything as one unit despite the suggestion.
	KeepAll bool
	// Index selects a sub-suggestion to keep staged; valid when !KeepAll.
	Index int
}

// UnstageRequest is the side-effecting command the orchestrator issues to the
// git collaborator when a split is chosen: the listed files must leave the
// staging area before re-analysis.
type UnstageRequest struct {
	Files []string
}
