package hook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/errors"
)

const marker = "# installed by gitguard"

const script = `#!/bin/sh
` + marker + `
exec gitguard prepare "$1"
`

// Install writes the prepare-commit-msg hook into .git/hooks. A hook that was
// not written by gitguard is never overwritten unless force is set.
func Install(repoRoot string, force bool) (string, error) {
	hooksDir := filepath.Join(repoRoot, ".git", "hooks")
	if _, err := os.Stat(hooksDir); err != nil {
		return "", errors.ErrHookInstall.WithError(err)
	}

	hookPath := filepath.Join(hooksDir, "prepare-commit-msg")
	if existing, err := os.ReadFile(hookPath); err == nil {
		if !strings.Contains(string(existing), marker) && !force {
			return "", errors.ErrHookExists.WithContext("path", hookPath)
		}
	}

	if err := os.WriteFile(hookPath, []byte(script), 0755); err != nil {
		return "", errors.ErrHookInstall.WithError(err)
	}
	return hookPath, nil
}

// Uninstall removes the hook only when gitguard installed it.
func Uninstall(repoRoot string) (bool, error) {
	hookPath := filepath.Join(repoRoot, ".git", "hooks", "prepare-commit-msg")

	existing, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if !strings.Contains(string(existing), marker) {
		return false, errors.ErrHookExists.WithContext("path", hookPath)
	}

	if err := os.Remove(hookPath); err != nil {
		return false, err
	}
	return true, nil
}
