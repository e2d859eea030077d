package ports

import (
	"context"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// GitService is the version-control collaborator. The analysis core only
// reads through it, except for Unstage, which the orchestrator calls once
// when the user picks a split.
type GitService interface {
	// GetChangedFiles lists the staged files with addition/deletion counts
	// and classification flags.
	GetChangedFiles(ctx context.Context) ([]models.FileChange, error)

	// GetDiff returns the raw unified diff of the staging area.
	GetDiff(ctx context.Context) (string, error)

	HasStagedChanges(ctx context.Context) bool

	CreateCommit(ctx context.Context, message string) error

	// Unstage removes the listed paths from the staging area.
	Unstage(ctx context.Context, files []string) error

	GetRepoRoot(ctx context.Context) (string, error)
}
