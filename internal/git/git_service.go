package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/analysis"
	"github.com/thomas-vilte/gitguard/internal/errors"
	"github.com/thomas-vilte/gitguard/internal/models"
)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// Exit status 1 means there are staged changes
	return err != nil && cmd.ProcessState.ExitCode() == 1
}

// GetChangedFiles lists staged files via numstat, with classification flags
// derived from each path. Binary files report "-" counts; they come back with
// zero additions/deletions and the binary flag set by the classifier.
func (s *GitService) GetChangedFiles(ctx context.Context) ([]models.FileChange, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--numstat")
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.ErrGetChangedFiles.WithError(err)
	}

	return parseNumstat(string(output)), nil
}

func parseNumstat(output string) []models.FileChange {
	changes := make([]models.FileChange, 0)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		path := strings.Join(fields[2:], " ")
		additions, _ := strconv.Atoi(fields[0])
		deletions, _ := strconv.Atoi(fields[1])

		changes = append(changes, models.FileChange{
			Path:      path,
			Additions: additions,
			Deletions: deletions,
			FileFlags: analysis.Classify(path),
		})
	}

	return changes
}

// GetDiff returns the staged diff only; gitguard analyzes what is about to be
// committed, not the working tree.
func (s *GitService) GetDiff(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetDiff.WithError(err)
	}
	return string(output), nil
}

func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	if !s.HasStagedChanges(ctx) {
		return errors.ErrNoChanges
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if err := cmd.Run(); err != nil {
		return errors.ErrCreateCommit.WithError(err)
	}
	return nil
}

// Unstage removes the given paths from the staging area.
func (s *GitService) Unstage(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return nil
	}

	args := append([]string{"reset", "-q", "HEAD", "--"}, files...)
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.ErrUnstageFiles.
			WithError(fmt.Errorf("%v: %s", err, strings.TrimSpace(stderr.String())))
	}
	return nil
}

func (s *GitService) GetRepoRoot(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err)
	}

	root := strings.TrimSpace(string(output))
	if root == "" {
		return "", errors.ErrNotInGitRepo
	}
	return root, nil
}
