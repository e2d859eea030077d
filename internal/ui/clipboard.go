package ui

import (
	"github.com/atotto/clipboard"
)

// CopyToClipboard puts the prompt on the system clipboard for the manual,
// non-billed export path.
func CopyToClipboard(content string) error {
	return clipboard.WriteAll(content)
}
