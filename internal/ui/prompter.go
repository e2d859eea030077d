package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/models"
	"github.com/thomas-vilte/gitguard/internal/ports"
)

var _ ports.SplitPrompter = (*TerminalPrompter)(nil)

// TerminalPrompter collects the split decision from stdin. With auto mode on
// it never asks and always keeps everything in one commit.
type TerminalPrompter struct {
	t    *i18n.Translations
	in   io.Reader
	auto bool
}

func NewTerminalPrompter(t *i18n.Translations, auto bool) *TerminalPrompter {
	return &TerminalPrompter{t: t, in: os.Stdin, auto: auto}
}

// NewTerminalPrompterWithReader exists for tests.
func NewTerminalPrompterWithReader(t *i18n.Translations, in io.Reader, auto bool) *TerminalPrompter {
	return &TerminalPrompter{t: t, in: in, auto: auto}
}

func (p *TerminalPrompter) ChooseSplit(_ context.Context, suggestion models.SplitSuggestion) (models.SplitChoice, error) {
	PrintSplitSuggestion(suggestion, p.t)

	if p.auto {
		PrintInfo(p.t.GetMessage("split_keep_all", 0, nil))
		return models.SplitChoice{KeepAll: true}, nil
	}

	fmt.Printf("\n%s ", p.t.GetMessage("split_choice_prompt", 0, map[string]interface{}{
		"Max": len(suggestion.Suggestions),
	}))

	reader := bufio.NewReader(p.in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return models.SplitChoice{KeepAll: true}, nil
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return models.SplitChoice{KeepAll: true}, nil
	}

	index, err := strconv.Atoi(response)
	if err != nil || index < 1 || index > len(suggestion.Suggestions) {
		return models.SplitChoice{KeepAll: true}, nil
	}

	excluded := 0
	for i, sub := range suggestion.Suggestions {
		if i != index-1 {
			excluded += len(sub.Files)
		}
	}
	PrintInfo(p.t.GetMessage("split_rescoped", 0, map[string]interface{}{"Count": excluded}))

	return models.SplitChoice{Index: index - 1}, nil
}

// Confirm asks a yes/no question; empty input means yes, matching the
// original hook behavior.
func Confirm(in io.Reader, question string) bool {
	fmt.Printf("%s ", question)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return true
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || (response != "n" && response != "no")
}

// SelectSuggestion asks the user to pick one of the rendered suggestions.
// Returns -1 when skipped.
func SelectSuggestion(in io.Reader, t *i18n.Translations, max int) int {
	fmt.Printf("\n%s ", t.GetMessage("suggestion_choice_prompt", 0, map[string]interface{}{"Max": max}))

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return -1
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return -1
	}

	index, err := strconv.Atoi(response)
	if err != nil || index < 1 || index > max {
		return -1
	}
	return index - 1
}
